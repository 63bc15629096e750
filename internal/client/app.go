package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-post-keeper/internal/adapter"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App dispatches subcommands to the API client.
type App struct {
	api      adapter.APIClient
	out      io.Writer
	commands map[string]command
	logger   *logger.Logger
}

func NewApp(api adapter.APIClient, out io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"signup":          {usage: "-name N -email E -password P", run: a.signup},
		"login":           {usage: "-email E -password P", run: a.login},
		"forgot-password": {usage: "-email E", run: a.forgotPassword},
		"create":          {usage: "-title T -content C", run: a.create},
		"list":            {usage: "[-page N] [-limit N] [-sort-by F] [-order asc|desc]", run: a.list},
		"get":             {usage: "<post-id>", run: a.get},
		"update":          {usage: "-title T -content C <post-id>", run: a.update},
		"delete":          {usage: "<post-id>", run: a.delete},
		"search":          {usage: "[-title T] [-author ID] [-date YYYY-MM-DD]", run: a.search},
		"version":         {usage: "", run: a.version},
	}
	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: post-client [-s URL] [-t TOKEN] <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	fs := newFlagSet("signup", a.out)
	var req models.SignupRequest
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.ConfirmPassword = req.Password

	user, err := a.api.Signup(ctx, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login", a.out)
	var req models.LoginRequest
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return a.print(struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}{User: user, Token: a.api.Token()})
}

func (a *App) forgotPassword(ctx context.Context, args []string) error {
	fs := newFlagSet("forgot-password", a.out)
	email := fs.String("email", "", "email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.api.ForgotPassword(ctx, *email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "password reset link requested")
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	in, _, err := parsePostInput("create", args, a.out)
	if err != nil {
		return err
	}

	post, err := a.api.CreatePost(ctx, in)
	if err != nil {
		return err
	}
	return a.print(post)
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list", a.out)
	var query models.ListPostsQuery
	fs.IntVar(&query.Page, "page", 0, "page number")
	fs.IntVar(&query.Limit, "limit", 0, "page size")
	fs.StringVar(&query.SortBy, "sort-by", "", "createdAt, title or content")
	fs.StringVar(&query.Order, "order", "", "asc or desc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := a.api.ListPosts(ctx, query)
	if err != nil {
		return err
	}
	return a.print(page)
}

func (a *App) get(ctx context.Context, args []string) error {
	postID, err := singlePostID(args)
	if err != nil {
		return err
	}

	post, err := a.api.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	return a.print(post)
}

func (a *App) update(ctx context.Context, args []string) error {
	in, rest, err := parsePostInput("update", args, a.out)
	if err != nil {
		return err
	}
	postID, err := singlePostID(rest)
	if err != nil {
		return err
	}

	post, err := a.api.UpdatePost(ctx, postID, in)
	if err != nil {
		return err
	}
	return a.print(post)
}

func (a *App) delete(ctx context.Context, args []string) error {
	postID, err := singlePostID(args)
	if err != nil {
		return err
	}

	if err = a.api.DeletePost(ctx, postID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "post %s deleted\n", postID)
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	fs := newFlagSet("search", a.out)
	var query models.SearchPostsQuery
	fs.StringVar(&query.Title, "title", "", "title substring")
	fs.StringVar(&query.AuthorID, "author", "", "author id")
	fs.StringVar(&query.Date, "date", "", "created on or after (YYYY-MM-DD or RFC3339)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	posts, err := a.api.SearchPosts(ctx, query)
	if err != nil {
		return err
	}
	return a.print(posts)
}

func (a *App) version(ctx context.Context, _ []string) error {
	info, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	return a.print(info)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("print result: %w", err)
	}
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func parsePostInput(name string, args []string, out io.Writer) (models.PostInput, []string, error) {
	fs := newFlagSet(name, out)
	var in models.PostInput
	fs.StringVar(&in.Title, "title", "", "post title")
	fs.StringVar(&in.Content, "content", "", "post content")
	if err := fs.Parse(args); err != nil {
		return models.PostInput{}, nil, err
	}
	return in, fs.Args(), nil
}

func singlePostID(args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", ErrMissingPostID
	}
	return strings.TrimSpace(args[0]), nil
}
