package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var articleHeading string

var articleCmd = &cobra.Command{
	Use:   "article [title]",
	Short: "Fetch one Wikipedia article as markdown",
	Long: `Fetches the plain-text extract of a French Wikipedia article and
prints it as markdown, prefixed with a level-1 heading. This is the
same conversion the map applies to each matched zone's article.`,
	Args: cobra.ExactArgs(1),
	RunE: runArticle,
}

func init() {
	articleCmd.Flags().StringVar(&articleHeading, "heading", "", "heading to use (defaults to the title)")
	rootCmd.AddCommand(articleCmd)
}

func runArticle(cmd *cobra.Command, args []string) error {
	if appConfig == nil {
		return errors.New("cli not configured")
	}
	title := args[0]
	heading := articleHeading
	if heading == "" {
		heading = title
	}

	article, err := appConfig.Articles.Read(context.Background(), title, heading)
	if err != nil {
		return fmt.Errorf("article failed: %w", err)
	}
	cmd.Println(article)
	return nil
}
