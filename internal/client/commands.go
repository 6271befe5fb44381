package client

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-task-keeper/models"
)

func credentialsFlags(fs *flag.FlagSet) (*string, *string) {
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	return email, password
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	email, password := credentialsFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.adapter.Register(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	return a.printJSON(resp)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email, password := credentialsFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list")
	category := fs.String("category", "", "only items of this category")
	priority := fs.String("priority", "", "only items of this priority")
	search := fs.String("search", "", "case-insensitive substring of name or description")
	sort := fs.String("sort", "", "created_desc, created_asc, name_asc, name_desc or priority")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.adapter.ListItems(ctx, models.ItemFilter{
		Category: models.Category(*category),
		Priority: models.Priority(*priority),
		Search:   *search,
		Sort:     models.SortOrder(*sort),
	})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRIORITY\tDONE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", it.ID, it.Name, it.Category, it.Priority, it.Done)
	}
	return tw.Flush()
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	name := fs.String("name", "", "item name (required)")
	description := fs.String("description", "", "optional description")
	category := fs.String("category", "", "personal, work, shopping, health or other")
	priority := fs.String("priority", "", "low, medium or high")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("%w: -name", ErrMissingFlag)
	}

	request := models.CreateItemRequest{
		Name:     *name,
		Category: models.Category(*category),
		Priority: models.Priority(*priority),
	}
	if isFlagSet(fs, "description") {
		request.Description = description
	}

	item, err := a.adapter.CreateItem(ctx, request)
	if err != nil {
		return err
	}
	return a.printJSON(item)
}

// update sends only the flags given on the command line.
func (a *App) update(ctx context.Context, args []string) error {
	fs := a.newFlagSet("update")
	id := fs.String("id", "", "item id (or first argument)")
	name := fs.String("name", "", "new name")
	description := fs.String("description", "", "new description")
	category := fs.String("category", "", "new category")
	priority := fs.String("priority", "", "new priority")
	done := fs.String("done", "", "true or false")
	if err := fs.Parse(args); err != nil {
		return err
	}

	itemID, err := positionalID(fs, *id)
	if err != nil {
		return err
	}

	var update models.ItemUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.Name = name
		case "description":
			update.Description = description
		case "category":
			c := models.Category(*category)
			update.Category = &c
		case "priority":
			p := models.Priority(*priority)
			update.Priority = &p
		}
	})
	if isFlagSet(fs, "done") {
		d, err := strconv.ParseBool(*done)
		if err != nil {
			return fmt.Errorf("invalid -done value %q: %w", *done, err)
		}
		update.Done = &d
	}
	if update.IsEmpty() {
		return ErrNothingToSend
	}

	item, err := a.adapter.UpdateItem(ctx, itemID, update)
	if err != nil {
		return err
	}
	return a.printJSON(item)
}

func (a *App) done(ctx context.Context, args []string) error {
	fs := a.newFlagSet("done")
	if err := fs.Parse(args); err != nil {
		return err
	}

	itemID, err := positionalID(fs, "")
	if err != nil {
		return err
	}

	done := true
	item, err := a.adapter.UpdateItem(ctx, itemID, models.ItemUpdate{Done: &done})
	if err != nil {
		return err
	}
	return a.printJSON(item)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete")
	id := fs.String("id", "", "item id (or first argument)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	itemID, err := positionalID(fs, *id)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, "deleted", itemID)
	return err
}

func (a *App) health(ctx context.Context, _ []string) error {
	health, err := a.adapter.Health(ctx)
	if printErr := a.printJSON(health); printErr != nil {
		return printErr
	}
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, v)
	return err
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
