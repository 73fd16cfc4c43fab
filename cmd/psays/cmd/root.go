/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	pixelsays "github.com/Bli-AIk/pixel-says"
	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 40

type options struct {
	verbose bool
	files   []string
	width   int
	image   string
	mode    string
}

func init() {
	log.SetHandler(clihander.Default)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "psays [TEXT...]",
		Short: "Prints out input text with a pixel image",
		Long: `Prints the input text in a speech bubble with a picture under it.

The text comes from --files, then from the arguments, then from stdin.
Without --image the built-in mascot is drawn.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose logging")
	cmd.Flags().StringArrayVarP(&opts.files, "files", "f", nil, "Set the input files to use")
	cmd.Flags().IntVarP(&opts.width, "width", "w", defaultWidth, "Set the width of the text box")
	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "Path to the pixel image file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", pixelsays.TrueColor.String(), "Pixel mode: truecolor, monochrome or invert")

	return cmd
}

// sayer renders every message against the same image and writer.
type sayer struct {
	out   io.Writer
	width int
	image *pixelsays.Image
}

func (s *sayer) say(message string) error {
	if s.image == nil {
		if err := pixelsays.Say(s.out, message, s.width); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := s.image.Say(s.out, message, s.width); err != nil {
		return fmt.Errorf("failed to display with image: %w", err)
	}
	return nil
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if opts.width <= 0 {
		return fmt.Errorf("invalid width %d: must be greater than zero", opts.width)
	}
	mode, err := pixelsays.ParsePixelMode(opts.mode)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	s := &sayer{out: out, width: opts.width}

	if opts.image != "" {
		img, err := pixelsays.Open(opts.image)
		if err != nil {
			return err
		}
		s.image = img.Mode(mode)
		log.WithFields(log.Fields{
			"image": opts.image,
			"mode":  mode,
		}).Debug("Rendering with image")
	}

	err = sayAll(s, cmd.InOrStdin(), args, opts.files)
	// whatever was rendered before a failure still reaches the terminal
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("failed to write output: %w", flushErr)
	}
	return err
}

func sayAll(s *sayer, stdin io.Reader, args, files []string) error {
	switch {
	case len(files) > 0:
		for _, f := range files {
			log.WithField("file", f).Debug("Reading message")
			data, err := os.ReadFile(f)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			if err := s.say(string(data)); err != nil {
				return err
			}
		}
		return nil
	case len(args) > 0:
		return s.say(strings.Join(args, " "))
	default:
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			log.Info("Reading message from stdin, press Ctrl-D when done")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		return s.say(string(data))
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
