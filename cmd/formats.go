package cmd

import (
	"github.com/spf13/cobra"

	"uniplayer/internal/media"
	"uniplayer/internal/player"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats and how each is played",
	Args:  cobra.NoArgs,
	RunE:  formatsRun,
}

type formatInfo struct {
	Format string `json:"format"`
	Route  string `json:"route"`
}

func formatsRun(cmd *cobra.Command, args []string) error {
	formats := media.Formats()
	infos := make([]formatInfo, 0, len(formats))
	for _, f := range formats {
		infos = append(infos, formatInfo{
			Format: f.String(),
			Route:  player.RouteFor(f).String(),
		})
	}
	return printFormats(cmd.OutOrStdout(), infos)
}
