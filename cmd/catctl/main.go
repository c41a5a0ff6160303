// Command catctl reads and edits the cat feeding log of a running catfeed
// server from the terminal.
//
// Usage:
//
//	catctl [-server URL] [-o text|json|yaml] [-tz zone] <command> [args]
//
// Commands:
//
//	show                    dashboard: recent feedings, chart, messages, gallery
//	feedings [-all]         recent feedings, or every feeding including deleted
//	feed <type>             log a feeding ("Cat Can", "Cat Food" or "Other")
//	delete-feeding <id>     soft-delete a feeding
//	messages [-all]         latest messages, or every message including deleted
//	most-liked              most liked messages
//	post <content>          post a message
//	like <id>               like a message
//	delete-message <id>     soft-delete a message
//	images                  latest images
//	upload <url>            add an image by URL or data URL
//	chart                   feedings per day
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/atinyakov/catfeed/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	l := logger.New()
	err := run(ctx, os.Args[1:], os.Stdout, l)
	l.Sync()
	stop()

	if err != nil {
		log.SetFlags(0)
		log.Fatal("catctl: ", err)
	}
}
