package cli

import (
	"context"

	"github.com/Marat1506/hadj-admin/internal/attractions"
	"github.com/Marat1506/hadj-admin/internal/carousel"
	"github.com/Marat1506/hadj-admin/internal/checklists"
	"github.com/Marat1506/hadj-admin/internal/gallery"
	"github.com/Marat1506/hadj-admin/internal/guide"
	"github.com/Marat1506/hadj-admin/internal/news"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/spf13/cobra"
)

func attractionsCommand(rt *runtime) *cobra.Command {
	return crud[attractions.Attraction]{
		use:   "attractions",
		short: "Manage attractions",
		newStore: func(cmd *cobra.Command, s Services) *resource.Store[attractions.Attraction] {
			category, _ := cmd.Flags().GetString("category")
			return s.Attractions.NewStore(category)
		},
		listFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("category", "", "only list attractions of this category")
		},
	}.command(rt)
}

func carouselCommand(rt *runtime) *cobra.Command {
	return crud[carousel.Banner]{
		use:   "carousel",
		short: "Manage home page carousel items",
		newStore: func(_ *cobra.Command, s Services) *resource.Store[carousel.Banner] {
			return s.Carousel.NewStore()
		},
	}.command(rt)
}

func galleryCommand(rt *runtime) *cobra.Command {
	return crud[gallery.Item]{
		use:   "gallery",
		short: "Manage gallery images and videos",
		newStore: func(_ *cobra.Command, s Services) *resource.Store[gallery.Item] {
			return s.Gallery.NewStore()
		},
	}.command(rt)
}

func newsCommand(rt *runtime) *cobra.Command {
	cmd := crud[news.Item]{
		use:   "news",
		short: "Manage news",
		newStore: func(_ *cobra.Command, s Services) *resource.Store[news.Item] {
			return s.News.NewStore()
		},
	}.command(rt)

	for _, published := range []bool{true, false} {
		use, short := "publish ID", "Publish a news item"
		if !published {
			use, short = "unpublish ID", "Hide a news item"
		}

		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				return rt.run(cmd, func(ctx context.Context, s Services) error {
					store := s.News.NewStore()
					defer store.Close()

					item, err := news.Publish(ctx, store, id, published)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), item)
				})
			},
		})
	}

	return cmd
}

func checklistCommand(rt *runtime) *cobra.Command {
	cmd := crud[checklists.Item]{
		use:   "checklist",
		short: "Manage pilgrim checklist items",
		newStore: func(_ *cobra.Command, s Services) *resource.Store[checklists.Item] {
			return s.Checklists.NewStore().Store
		},
		list: func(ctx context.Context, cmd *cobra.Command, s Services) ([]checklists.Item, error) {
			includeCompleted, _ := cmd.Flags().GetBool("include-completed")

			store := s.Checklists.NewStore()
			defer store.Close()

			if err := store.Filter(ctx, includeCompleted); err != nil {
				return nil, err
			}
			return store.Items(), nil
		},
		listFlags: func(cmd *cobra.Command) {
			cmd.Flags().Bool("include-completed", true, "include completed items")
		},
	}.command(rt)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle ID",
			Short: "Flip the completion of an item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				return rt.run(cmd, func(ctx context.Context, s Services) error {
					store := s.Checklists.NewStore()
					defer store.Close()

					item, err := store.Toggle(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), item)
				})
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Summarize the checklist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return rt.run(cmd, func(ctx context.Context, s Services) error {
					store := s.Checklists.NewStore()
					defer store.Close()

					stats, err := store.Stats(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), stats)
				})
			},
		},
	)

	return cmd
}

func guideCategoriesCommand(rt *runtime) *cobra.Command {
	return crud[guide.Category]{
		use:   "guide-categories",
		short: "Manage guide categories",
		newStore: func(_ *cobra.Command, s Services) *resource.Store[guide.Category] {
			return s.Guide.NewCategoriesStore()
		},
	}.command(rt)
}

func guideSubcategoriesCommand(rt *runtime) *cobra.Command {
	return crud[guide.Subcategory]{
		use:   "guide-subcategories",
		short: "Manage guide subcategories",
		newStore: func(cmd *cobra.Command, s Services) *resource.Store[guide.Subcategory] {
			return s.Guide.NewSubcategoriesStore(flagInt64(cmd, "category"))
		},
		listFlags: func(cmd *cobra.Command) {
			cmd.Flags().Int64("category", 0, "only list subcategories of this category id")
		},
	}.command(rt)
}

func guideContentCommand(rt *runtime) *cobra.Command {
	return crud[guide.Content]{
		use:   "guide-content",
		short: "Manage guide articles",
		newStore: func(cmd *cobra.Command, s Services) *resource.Store[guide.Content] {
			return s.Guide.NewContentStore(flagInt64(cmd, "category"), flagInt64(cmd, "subcategory"))
		},
		listFlags: func(cmd *cobra.Command) {
			cmd.Flags().Int64("category", 0, "only list content of this category id")
			cmd.Flags().Int64("subcategory", 0, "only list content of this subcategory id")
		},
	}.command(rt)
}

func analyticsCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.run(cmd, func(ctx context.Context, s Services) error {
				loader := s.Analytics.NewLoader()
				defer loader.Close()

				dashboard, err := loader.Load(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dashboard)
			})
		},
	}
}
