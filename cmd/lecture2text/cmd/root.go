package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"lecture-whisper/cmd/lecture2text/cmd/serve"
	"lecture-whisper/cmd/lecture2text/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lecture2text",
	Short: "A service that transcribes and translates uploaded lecture audio",
	Long: `A service that transcribes and translates uploaded lecture audio.
- Uploaded clips are translated toward a target language and transcribed in the original
- Results are appended to a per-user history in MongoDB
- A read endpoint returns a user's accumulated history`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
