package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/bookmarkd/internal/client"
)

// Run executes one bookmarkctl subcommand and returns a process exit code.
//
// Usage:
//
//	bookmarkctl [-server URL] signup -email a@x.com
//	bookmarkctl [-server URL] signin -email a@x.com
//	bookmarkctl [-server URL] me
//	bookmarkctl [-server URL] list
//	bookmarkctl [-server URL] add -title T -link https://x [-desc D]
//	bookmarkctl [-server URL] delete -id 42
//
// Authenticated commands read the token from the BOOKMARKD_TOKEN environment
// variable; signup/signin print a token suitable for exporting.
func Run(ctx context.Context, args []string, out io.Writer) int {
	fs := flag.NewFlagSet("bookmarkctl", flag.ContinueOnError)
	fs.SetOutput(out)
	server := fs.String("server", "http://localhost:8080", "bookmarkd server URL")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(out, "missing command: signup | signin | me | list | add | delete")
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	c := client.New(*server, os.Getenv("BOOKMARKD_TOKEN"))

	var err error
	switch cmd {
	case "signup":
		err = runAuth(ctx, c, rest, out, c.SignUp)
	case "signin":
		err = runAuth(ctx, c, rest, out, c.SignIn)
	case "me":
		err = runMe(ctx, c, out)
	case "list":
		err = runList(ctx, c, out)
	case "add":
		err = runAdd(ctx, c, rest, out)
	case "delete":
		err = runDelete(ctx, c, rest)
	default:
		fmt.Fprintf(out, "unknown command %q\n", cmd)
		return 2
	}

	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return 1
	}
	return 0
}

func runAuth(ctx context.Context, c *client.Client, args []string, out io.Writer,
	fn func(ctx context.Context, email, password string) (string, error)) error {

	fs := flag.NewFlagSet("auth", flag.ContinueOnError)
	fs.SetOutput(out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("-email is required")
	}

	password, err := GetPassword(out)
	if err != nil {
		return err
	}

	token, err := fn(ctx, *email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "export BOOKMARKD_TOKEN=%s\n", token)
	return nil
}

func runMe(ctx context.Context, c *client.Client, out io.Writer) error {
	u, err := c.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "#%d %s %s %s\n", u.ID, u.Email, u.FirstName, u.LastName)
	return nil
}

func runList(ctx context.Context, c *client.Client, out io.Writer) error {
	list, err := c.ListBookmarks(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "no bookmarks")
		return nil
	}
	for _, b := range list {
		fmt.Fprintf(out, "#%d\t%s\t%s\n", b.ID, b.Title, b.Link)
	}
	return nil
}

func runAdd(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(out)
	title := fs.String("title", "", "bookmark title")
	link := fs.String("link", "", "bookmark link")
	desc := fs.String("desc", "", "bookmark description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *link == "" {
		return fmt.Errorf("-title and -link are required")
	}

	b, err := c.AddBookmark(ctx, *title, *link, *desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created #%d\n", b.ID)
	return nil
}

func runDelete(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "bookmark id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	return c.DeleteBookmark(ctx, *id)
}
