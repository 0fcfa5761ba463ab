package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glenn-saic/simdissdk/gog"
)

var rootCmd = &cobra.Command{
	Use:   "gogparse",
	Short: "SIMDIS overlay file tool",
	Long:  "Gogparse reads SIMDIS GOG overlay files into typed shapes, rewrites them in canonical form, and tests positions against polygon geofences.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("comment-char", "#", "Character that introduces comment lines")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("comment_char", rootCmd.PersistentFlags().Lookup("comment-char"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("GOGPARSE")
	viper.AutomaticEnv()
}

// newParser builds a parser honoring the comment-char flag.
func newParser() (*gog.Parser, error) {
	p := gog.NewParser()
	if c := viper.GetString("comment_char"); c != "" {
		runes := []rune(c)
		if len(runes) != 1 {
			return nil, fmt.Errorf("comment-char must be a single character, got %q", c)
		}
		p.SetCommentChar(runes[0])
	}
	return p, nil
}
