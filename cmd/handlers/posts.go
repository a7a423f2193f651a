package handlers

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"carousel/internal/config"
	"carousel/internal/store"
)

// NewPostsCmd creates the posts command group.
func NewPostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage stored carousel posts",
		Long: `Manage carousel posts in the local store.

Posts move through a draft → scheduled → published lifecycle. Scheduling
requires a future timestamp; publishing stamps the publish time.

Examples:
  carousel posts list
  carousel posts delete 4f8b2c1a-...
  carousel posts schedule 4f8b2c1a-... --at 2026-09-15T09:00:00Z
  carousel posts publish 4f8b2c1a-...`,
	}

	cmd.AddCommand(newPostsListCmd())
	cmd.AddCommand(newPostsDeleteCmd())
	cmd.AddCommand(newPostsScheduleCmd())
	cmd.AddCommand(newPostsPublishCmd())

	return cmd
}

func newPostsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posts for the current owner, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			posts, closeStore := openStore()
			defer closeStore()

			list, err := posts.ListPosts(config.Get().Owner.UserID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ Failed to list posts: %v\n", err)
				os.Exit(1)
			}
			if len(list) == 0 {
				fmt.Println("No posts stored yet. Use 'carousel generate --save' to create one.")
				return
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tPLATFORM\tSTATUS\tSLIDES\tUPDATED")
			for _, p := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
					p.ID, p.Title, p.Platform, p.Status, len(p.Slides),
					p.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			w.Flush()
		},
	}
}

func newPostsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a post by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			posts, closeStore := openStore()
			defer closeStore()

			if err := posts.DeletePost(args[0]); err != nil {
				fmt.Fprintf(os.Stderr, "❌ Failed to delete post: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("🗑  Deleted post %s\n", args[0])
		},
	}
}

func newPostsScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [id]",
		Short: "Schedule a post for a future time",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			at, _ := cmd.Flags().GetString("at")
			when, err := time.Parse(time.RFC3339, at)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ Invalid --at time (want RFC3339, e.g. 2026-09-15T09:00:00Z): %v\n", err)
				os.Exit(1)
			}

			posts, closeStore := openStore()
			defer closeStore()

			userID := config.Get().Owner.UserID
			post, err := posts.GetPost(args[0], userID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ %v\n", err)
				os.Exit(1)
			}

			scheduled, err := posts.SchedulePost(post, userID, when)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ Failed to schedule post: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("📅 Scheduled %s for %s\n", scheduled.ID, scheduled.ScheduledFor.Format(time.RFC3339))
		},
	}
	cmd.Flags().String("at", "", "Schedule time in RFC3339 format (required)")
	cmd.MarkFlagRequired("at")
	return cmd
}

func newPostsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish [id]",
		Short: "Publish a post, stamping the publish time",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			posts, closeStore := openStore()
			defer closeStore()

			published, err := posts.PublishPost(args[0], config.Get().Owner.UserID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ Failed to publish post: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("🚀 Published %s at %s\n", published.ID, published.PublishedAt.Format(time.RFC3339))
		},
	}
}

// openStore opens the configured post store or exits.
func openStore() (*store.Store, func()) {
	posts, err := store.NewStore(config.Get().App.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to open post store: %v\n", err)
		os.Exit(1)
	}
	return posts, func() { posts.Close() }
}
