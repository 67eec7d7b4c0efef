package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
//
//nolint:gochecknoglobals //build info
var Version = "dev"

type globalFlags struct {
	configPath string
	baseURL    string
	token      string
	verbose    bool
	metrics    bool
}

// NewRootCommand builds the hadj-admin command tree.
func NewRootCommand() *cobra.Command {
	rt := new(runtime)

	root := &cobra.Command{
		Use:           "hadj-admin",
		Short:         "Administer the hadj CMS",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&rt.flags.configPath, "config", "c", "", "path to a YAML config file (default $CONFIG_PATH)")
	flags.StringVar(&rt.flags.baseURL, "base-url", "", "CMS API base URL, overrides api.base_url")
	flags.StringVar(&rt.flags.token, "token", "", "bearer token, overrides api.token")
	flags.BoolVarP(&rt.flags.verbose, "verbose", "v", false, "log requests to stderr")
	flags.BoolVar(&rt.flags.metrics, "metrics", false, "print request metrics to stderr when done")

	root.AddCommand(
		attractionsCommand(rt),
		carouselCommand(rt),
		checklistCommand(rt),
		galleryCommand(rt),
		guideCategoriesCommand(rt),
		guideSubcategoriesCommand(rt),
		guideContentCommand(rt),
		newsCommand(rt),
		analyticsCommand(rt),
		twinCommand(rt),
	)

	return root
}
