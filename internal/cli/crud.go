package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/spf13/cobra"
)

var (
	ErrInvalidField = errors.New("invalid field")
	ErrEmptyPayload = errors.New("nothing to send, use --set, --set-json, --clear or --file")
	ErrInvalidID    = errors.New("id must be a positive integer")
)

// crud builds the list/get/create/update/delete commands of one resource.
type crud[R resource.Record] struct {
	use   string
	short string

	newStore func(cmd *cobra.Command, s Services) *resource.Store[R]

	// optional
	list      func(ctx context.Context, cmd *cobra.Command, s Services) ([]R, error)
	listFlags func(cmd *cobra.Command)
}

func (c crud[R]) command(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   c.use,
		Short: c.short,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.run(cmd, func(ctx context.Context, s Services) error {
				items, err := c.fetch(ctx, cmd, s)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), items)
			})
		},
	}
	if c.listFlags != nil {
		c.listFlags(list)
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return rt.run(cmd, func(ctx context.Context, s Services) error {
				store := c.newStore(cmd, s)
				defer store.Close()

				item, err := store.GetByID(ctx, id, resource.WithBypassCache())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), item)
			})
		},
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := readPayload(cmd)
			if err != nil {
				return err
			}

			return rt.run(cmd, func(ctx context.Context, s Services) error {
				store := c.newStore(cmd, s)
				defer store.Close()

				item, err := store.Create(ctx, payload)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), item)
			})
		},
	}
	payloadFlags(create)

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a record, other fields are left as they are",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			payload, err := readPayload(cmd)
			if err != nil {
				return err
			}

			return rt.run(cmd, func(ctx context.Context, s Services) error {
				store := c.newStore(cmd, s)
				defer store.Close()

				item, err := store.Update(ctx, id, payload)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), item)
			})
		},
	}
	payloadFlags(update)

	remove := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return rt.run(cmd, func(ctx context.Context, s Services) error {
				store := c.newStore(cmd, s)
				defer store.Close()

				if err := store.Delete(ctx, id); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %d\n", id)
				return err
			})
		},
	}

	root.AddCommand(list, get, create, update, remove)

	return root
}

func (c crud[R]) fetch(ctx context.Context, cmd *cobra.Command, s Services) ([]R, error) {
	if c.list != nil {
		return c.list(ctx, cmd, s)
	}

	store := c.newStore(cmd, s)
	defer store.Close()

	if err := store.Mount(ctx); err != nil {
		return nil, err
	}

	return store.Items(), nil
}

func payloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("set", nil, "set a text field, name=value")
	cmd.Flags().StringArray("set-json", nil, "set a field to a JSON value, name=value")
	cmd.Flags().StringSlice("clear", nil, "clear fields")
	cmd.Flags().StringArray("file", nil, "attach a file, name=path")
}

// readPayload turns the payload flags into a form. Fields keep the order
// of the flag kinds: text, JSON, cleared, files.
func readPayload(cmd *cobra.Command) (*resource.Form, error) {
	form := new(resource.Form)

	set, _ := cmd.Flags().GetStringArray("set")
	for _, pair := range set {
		name, value, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		form.Add(name, value)
	}

	setJSON, _ := cmd.Flags().GetStringArray("set-json")
	for _, pair := range setJSON {
		name, raw, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		decoder := json.NewDecoder(strings.NewReader(raw))
		decoder.UseNumber()

		var value any
		if err := decoder.Decode(&value); err != nil || decoder.More() {
			return nil, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidField, name)
		}
		form.Add(name, value)
	}

	cleared, _ := cmd.Flags().GetStringSlice("clear")
	for _, name := range cleared {
		form.AddClear(name)
	}

	files, _ := cmd.Flags().GetStringArray("file")
	for _, pair := range files {
		name, path, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		file, err := resource.OpenFile(path)
		if err != nil {
			return nil, err //nolint:wrapcheck //already wrapped
		}
		form.AddFile(name, file)
	}

	if len(form.Names()) == 0 {
		return nil, ErrEmptyPayload
	}

	return form, nil
}

func splitPair(pair string) (string, string, error) {
	name, value, ok := strings.Cut(pair, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: %q, expected name=value", ErrInvalidField, pair)
	}

	return name, value, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	return id, nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err //nolint:wrapcheck //write errors are reported as is
}

func flagInt64(cmd *cobra.Command, name string) int64 {
	v, err := cmd.Flags().GetInt64(name)
	if err != nil {
		return 0
	}

	return v
}
