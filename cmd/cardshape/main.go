// seehuhn.de/go/outline - card outline geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command cardshape builds card outlines and writes them as SVG or PDF
// cut sheets, or as PNG clip masks.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/config"
	"seehuhn.de/go/outline/export"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the values of the command line flags.
type options struct {
	configFile string
	verbose    bool

	shape   string
	width   float64
	height  float64
	radius  float64
	archW   float64
	archH   float64
	pattern string
	holeD   float64
	stroke  float64
	border  string
	borderW float64
	color   string
	title   string
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	root := &cobra.Command{
		Use:          "cardshape",
		Short:        "Build card outlines and cut sheets",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opt.verbose {
				outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opt.configFile, "config", "", "configuration file (yaml, toml or json)")
	pf.BoolVarP(&opt.verbose, "verbose", "v", false, "log clamping and fallback decisions")
	pf.StringVar(&opt.shape, "shape", "rectangle", "shape archetype")
	pf.Float64Var(&opt.width, "width", 85, "width in mm")
	pf.Float64Var(&opt.height, "height", 55, "height in mm")
	pf.Float64Var(&opt.radius, "radius", 0, "corner radius in mm")
	pf.Float64Var(&opt.archW, "arch-width", 0, "lock arch width in mm (0 for default)")
	pf.Float64Var(&opt.archH, "arch-height", 0, "lock arch height in mm (0 for default)")
	pf.StringVar(&opt.pattern, "holes", "none", "hole pattern")
	pf.Float64Var(&opt.holeD, "hole-diameter", 4, "hole diameter in mm")
	pf.Float64Var(&opt.stroke, "stroke", 0, "cut line width in mm (0 for configured default)")
	pf.StringVar(&opt.border, "border", "", "border mode (thin-outline or fixed-2mm)")
	pf.Float64Var(&opt.borderW, "border-width", 0, "hairline width in mm")
	pf.StringVar(&opt.color, "color", "", "border colour")
	pf.StringVar(&opt.title, "title", "", "document title")

	root.AddCommand(
		newSVGCmd(opt),
		newPDFCmd(opt),
		newMaskCmd(opt),
		newCatalogCmd(),
	)
	return root
}

// design is everything needed to write one card.
type design struct {
	cfg     *config.Config
	session *outline.Session
}

func (opt *options) load() (*design, error) {
	cfg, err := config.Load(opt.configFile)
	if err != nil {
		return nil, err
	}
	a, err := outline.ParseArchetype(opt.shape)
	if err != nil {
		return nil, err
	}
	spec := outline.ShapeSpec{
		Archetype:      a,
		CornerRadiusMm: opt.radius,
		Aux:            outline.Aux{LockArchWidthMm: opt.archW, LockArchHeightMm: opt.archH},
	}
	spec = spec.WithWidth(opt.width).WithHeight(opt.height)
	if spec.WidthMm != opt.width || spec.HeightMm != opt.height {
		outline.Logger().Info("size clamped",
			"width", spec.WidthMm, "height", spec.HeightMm)
	}

	s, err := outline.NewSession(spec, cfg.Calibration)
	if err != nil {
		return nil, err
	}

	p, err := outline.ParsePattern(opt.pattern)
	if err != nil {
		return nil, err
	}
	stroke := opt.stroke
	if stroke <= 0 {
		stroke = cfg.CutWidthMm
	}
	s.SetHoles(outline.HoleSpec{DiameterMm: opt.holeD, Pattern: p, StrokeWidthMm: stroke})

	if opt.border != "" {
		m, err := outline.ParseBorderMode(opt.border)
		if err != nil {
			return nil, err
		}
		s.SetBorder(outline.BorderSpec{ThicknessMm: opt.borderW, Mode: m, ColorRef: opt.color})
	}
	return &design{cfg: cfg, session: s}, nil
}

func (opt *options) sheet(d *design) *export.Sheet {
	title := opt.title
	if title == "" {
		title = opt.shape
	}
	sh := export.NewSheet(title, d.session)
	if opt.border == "" {
		sh.Borders = nil
	}
	sh.CutWidthMm = d.cfg.CutWidthMm
	if opt.stroke > 0 {
		sh.CutWidthMm = opt.stroke
	}
	return sh
}

func newSVGCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "svg [file]",
		Short: "Write an SVG cut sheet (to stdout if no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opt.load()
			if err != nil {
				return err
			}
			var w io.Writer = cmd.OutOrStdout()
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return export.WriteSVG(w, opt.sheet(d))
		},
	}
}

func newPDFCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pdf file",
		Short: "Write a PDF cut sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opt.load()
			if err != nil {
				return err
			}
			return export.WritePDF(args[0], opt.sheet(d))
		},
	}
}

func newMaskCmd(opt *options) *cobra.Command {
	var res float64
	cmd := &cobra.Command{
		Use:   "mask file.png",
		Short: "Write the clip mask of the outline as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opt.load()
			if err != nil {
				return err
			}
			if res <= 0 {
				res = d.cfg.PxPerMm
			}
			return writeMask(args[0], d.session.Outline(), res)
		},
	}
	cmd.Flags().Float64Var(&res, "px-per-mm", 0, "mask resolution (0 for configured default)")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List shape archetypes, hole patterns and border modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "shapes:")
			for _, a := range outline.Archetypes() {
				note := ""
				if !a.Editable() {
					note = " (curved)"
				}
				fmt.Fprintf(w, "  %s%s\n", a, note)
			}
			fmt.Fprintln(w, "hole patterns:")
			for _, p := range outline.Patterns() {
				fmt.Fprintf(w, "  %s\n", p)
			}
			fmt.Fprintln(w, "border modes:")
			for _, m := range []outline.BorderMode{outline.BorderThin, outline.BorderFixed} {
				fmt.Fprintf(w, "  %s\n", m)
			}
		},
	}
}
