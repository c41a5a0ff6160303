package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/atinyakov/catfeed/internal/client"
	"github.com/atinyakov/catfeed/internal/logger"
	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/view"
)

var errUsage = errors.New("usage: catctl [-server URL] [-o text|json|yaml] [-tz zone] <command> [args]")

type options struct {
	Server   string `env:"CATFEED_URL"`
	Output   string `env:"CATFEED_OUTPUT"`
	Timezone string `env:"CATFEED_TZ"`
	LogLevel string `env:"CATFEED_LOG_LEVEL"`
}

// parseOptions applies the environment first so that flags win.
func parseOptions(args []string) (*options, []string, error) {
	o := &options{
		Server:   "http://localhost:8080",
		Output:   "text",
		Timezone: "Local",
		LogLevel: "warn",
	}
	if err := env.Parse(o); err != nil {
		return nil, nil, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("catctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.Server, "server", o.Server, "catfeed server base URL")
	fs.StringVar(&o.Output, "o", o.Output, "output format: text, json or yaml")
	fs.StringVar(&o.Timezone, "tz", o.Timezone, "time zone for displayed times")
	fs.StringVar(&o.LogLevel, "l", o.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	switch o.Output {
	case "text", "json", "yaml":
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", o.Output)
	}

	return o, fs.Args(), nil
}

// cli is the state shared by every command.
type cli struct {
	api *client.Client
	out io.Writer
	loc *time.Location
	fmt string
}

type command func(ctx context.Context, c *cli, args []string) error

var commands = map[string]command{
	"show":           show,
	"feedings":       feedings,
	"feed":           feed,
	"delete-feeding": deleteFeeding,
	"messages":       messages,
	"most-liked":     mostLiked,
	"post":           post,
	"like":           like,
	"delete-message": deleteMessage,
	"images":         images,
	"upload":         upload,
	"chart":          chart,
}

func run(ctx context.Context, args []string, out io.Writer, l *logger.Logger) error {
	o, rest, err := parseOptions(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return errUsage
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", rest[0])
	}

	if err := l.Init(o.LogLevel); err != nil {
		return err
	}

	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return fmt.Errorf("time zone: %w", err)
	}

	c := &cli{
		api: client.New(o.Server, &view.State{}, l.Log),
		out: out,
		loc: loc,
		fmt: o.Output,
	}

	l.Log.Debug("running command", zap.String("command", rest[0]), zap.String("server", o.Server))
	return cmd(ctx, c, rest[1:])
}

// emit writes v as JSON or YAML, or calls text for the text format.
func (c *cli) emit(v any, text func(*view.TextRenderer) error) error {
	switch c.fmt {
	case "json":
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(view.NewTextRenderer(c.out))
	}
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one record id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", args[0])
	}
	return id, nil
}

// allFlag parses the optional -all flag of the listing commands.
func allFlag(name string, args []string) (bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	all := fs.Bool("all", false, "include deleted records")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if fs.NArg() > 0 {
		return false, fmt.Errorf("%s takes no arguments", name)
	}
	return *all, nil
}

func show(ctx context.Context, c *cli, _ []string) error {
	if err := c.api.FetchAll(ctx); err != nil {
		return err
	}
	state := c.api.State()
	return c.emit(state, func(t *view.TextRenderer) error {
		return t.Page(view.NewPage(state, c.loc))
	})
}

func feedings(ctx context.Context, c *cli, args []string) error {
	all, err := allFlag("feedings", args)
	if err != nil {
		return err
	}
	if err := c.api.FetchFeedings(ctx); err != nil {
		return err
	}
	return c.printFeedings(all)
}

func (c *cli) printFeedings(all bool) error {
	records := c.api.State().Feedings
	title := "All feedings"
	if all {
		records = view.AllFeedings(records)
	} else {
		records = view.ActiveFeedings(records, view.FeedingLimit)
		title = "Recent feedings"
	}
	return c.emit(records, func(t *view.TextRenderer) error {
		return t.Feedings(title, view.FeedingRows(records, c.loc))
	})
}

func feed(ctx context.Context, c *cli, args []string) error {
	if len(args) == 0 {
		return errors.New("expected a feeding type")
	}
	if err := c.api.AddFeeding(ctx, models.FeedingType(strings.Join(args, " "))); err != nil {
		return err
	}
	return c.printFeedings(false)
}

func deleteFeeding(ctx context.Context, c *cli, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := c.api.DeleteFeeding(ctx, id); err != nil {
		return err
	}
	return c.printFeedings(false)
}

func messages(ctx context.Context, c *cli, args []string) error {
	all, err := allFlag("messages", args)
	if err != nil {
		return err
	}
	if err := c.api.FetchMessages(ctx); err != nil {
		return err
	}
	return c.printMessages(all)
}

func (c *cli) printMessages(all bool) error {
	msgs := c.api.State().Messages
	title := "All messages"
	if all {
		msgs = view.AllMessages(msgs)
	} else {
		msgs = view.LatestMessages(msgs, view.MessageLimit)
		title = "Latest messages"
	}
	return c.emit(msgs, func(t *view.TextRenderer) error {
		return t.Messages(title, view.MessageRows(msgs, c.loc))
	})
}

func mostLiked(ctx context.Context, c *cli, _ []string) error {
	if err := c.api.FetchMessages(ctx); err != nil {
		return err
	}
	msgs := view.MostLikedMessages(c.api.State().Messages, view.MessageLimit)
	return c.emit(msgs, func(t *view.TextRenderer) error {
		return t.Messages("Most liked", view.MessageRows(msgs, c.loc))
	})
}

func post(ctx context.Context, c *cli, args []string) error {
	if err := c.api.PostMessage(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	return c.printMessages(false)
}

func like(ctx context.Context, c *cli, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := c.api.LikeMessage(ctx, id); err != nil {
		return err
	}
	return c.printMessages(false)
}

func deleteMessage(ctx context.Context, c *cli, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := c.api.DeleteMessage(ctx, id); err != nil {
		return err
	}
	return c.printMessages(false)
}

func images(ctx context.Context, c *cli, _ []string) error {
	if err := c.api.FetchImages(ctx); err != nil {
		return err
	}
	return c.printImages()
}

func (c *cli) printImages() error {
	imgs := view.Gallery(c.api.State().Images, view.GalleryLimit)
	return c.emit(imgs, func(t *view.TextRenderer) error {
		return t.Gallery(view.ImageTiles(imgs, c.loc))
	})
}

func upload(ctx context.Context, c *cli, args []string) error {
	if len(args) != 1 {
		return errors.New("expected one image URL")
	}
	if err := c.api.UploadImage(ctx, args[0]); err != nil {
		return err
	}
	return c.printImages()
}

// chart buckets days in the -tz zone so they match the displayed times. The
// server only knows named zones, so the local zone is bucketed here from the
// fetched feedings.
func chart(ctx context.Context, c *cli, _ []string) error {
	points, err := c.chartPoints(ctx)
	if err != nil {
		return err
	}
	return c.emit(points, func(t *view.TextRenderer) error {
		return t.Chart(points)
	})
}

func (c *cli) chartPoints(ctx context.Context) ([]view.ChartPoint, error) {
	if c.loc != time.Local {
		return c.api.Chart(ctx, c.loc.String())
	}

	if err := c.api.FetchFeedings(ctx); err != nil {
		return nil, err
	}
	return view.FeedingChart(c.api.State().Feedings, c.loc), nil
}
