package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pombredanne/jsmime/emitter"
	_ "github.com/pombredanne/jsmime/emitter/encoding"
)

var (
	maxLineLength   int
	firstLineLength int
	useEncodedWords bool
	charset         string
)

var rootCmd = &cobra.Command{
	Use:   "emit",
	Short: "Tools for eyeballing emitted header field bodies",
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxLineLength, "width", emitter.DefaultMaxLineLength, "maximum visible characters per line")
	rootCmd.PersistentFlags().IntVar(&firstLineLength, "first-width", 0, "budget for the first line (0 means same as width)")
	rootCmd.PersistentFlags().BoolVar(&useEncodedWords, "rfc2047", false, "render non-ASCII phrases as encoded words")
	rootCmd.PersistentFlags().StringVar(&charset, "charset", "UTF-8", "charset for encoded words")
}

// newEmitter builds an emitter from the persistent flags.
func newEmitter() *emitter.Emitter {
	opts := []emitter.Option{
		emitter.WithMaxLineLength(maxLineLength),
		emitter.WithCharset(charset),
	}
	if firstLineLength > 0 {
		opts = append(opts, emitter.WithFirstLineLength(firstLineLength))
	}
	if useEncodedWords {
		opts = append(opts, emitter.WithEncodedWords())
	}
	return emitter.New(opts...)
}

func Execute() error {
	return rootCmd.Execute()
}
