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

// Package config loads the calibration of the hole placement and the
// export settings from a configuration file and the environment.
//
// Environment variables use the prefix CARDSHAPE_ and underscores in
// place of dots, for example CARDSHAPE_HOLES_MIN_CLEARANCE.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/export"
)

// Configuration keys.
const (
	CfgMinClearance     = "holes.min_clearance"
	CfgSideProportion   = "holes.side_proportion"
	CfgCutLineCalib     = "holes.cut_line_calibration"
	CfgMinDiameter      = "holes.min_diameter"
	CfgMaxDiameter      = "holes.max_diameter"
	CfgLockMinDiameter  = "holes.lock_min_diameter"
	CfgLockMaxDiameter  = "holes.lock_max_diameter"
	CfgLockTopClearance = "holes.lock_top_clearance"
	CfgSlotWidth        = "holes.slot_width"
	CfgSlotHeight       = "holes.slot_height"
	CfgSlotClearanceX   = "holes.slot_clearance_x"
	CfgSlotClearanceY   = "holes.slot_clearance_y"

	CfgCutWidth = "export.cut_width"
	CfgPxPerMm  = "export.px_per_mm"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CARDSHAPE"

// Config is the complete configuration.
type Config struct {
	Calibration outline.Calibration

	// CutWidthMm is the stroke width of cut lines on cut sheets.
	CutWidthMm float64

	// PxPerMm is the resolution of clip masks.
	PxPerMm float64
}

// New returns a viper instance with all defaults set and environment
// overrides enabled.
func New() *viper.Viper {
	v := viper.New()
	cal := outline.DefaultCalibration()
	v.SetDefault(CfgMinClearance, cal.MinClearanceMm)
	v.SetDefault(CfgSideProportion, cal.SideProportionFactor)
	v.SetDefault(CfgCutLineCalib, cal.CutLineCalibrationMm)
	v.SetDefault(CfgMinDiameter, cal.MinDiameterMm)
	v.SetDefault(CfgMaxDiameter, cal.MaxDiameterMm)
	v.SetDefault(CfgLockMinDiameter, cal.LockMinDiameterMm)
	v.SetDefault(CfgLockMaxDiameter, cal.LockMaxDiameterMm)
	v.SetDefault(CfgLockTopClearance, cal.LockTopClearanceMm)
	v.SetDefault(CfgSlotWidth, cal.SlotWidthMm)
	v.SetDefault(CfgSlotHeight, cal.SlotHeightMm)
	v.SetDefault(CfgSlotClearanceX, cal.SlotClearanceXMm)
	v.SetDefault(CfgSlotClearanceY, cal.SlotClearanceYMm)
	v.SetDefault(CfgCutWidth, export.DefaultCutWidthMm)
	v.SetDefault(CfgPxPerMm, outline.PxPerMm)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. If fname is empty, only defaults and
// environment variables are used.
func Load(fname string) (*Config, error) {
	v := New()
	if fname != "" {
		v.SetConfigFile(fname)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %q: %w", fname, err)
		}
	}
	return FromViper(v)
}

// FromViper extracts the configuration from v.
func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		Calibration: outline.Calibration{
			MinClearanceMm:       v.GetFloat64(CfgMinClearance),
			SideProportionFactor: v.GetFloat64(CfgSideProportion),
			CutLineCalibrationMm: v.GetFloat64(CfgCutLineCalib),
			MinDiameterMm:        v.GetFloat64(CfgMinDiameter),
			MaxDiameterMm:        v.GetFloat64(CfgMaxDiameter),
			LockMinDiameterMm:    v.GetFloat64(CfgLockMinDiameter),
			LockMaxDiameterMm:    v.GetFloat64(CfgLockMaxDiameter),
			LockTopClearanceMm:   v.GetFloat64(CfgLockTopClearance),
			SlotWidthMm:          v.GetFloat64(CfgSlotWidth),
			SlotHeightMm:         v.GetFloat64(CfgSlotHeight),
			SlotClearanceXMm:     v.GetFloat64(CfgSlotClearanceX),
			SlotClearanceYMm:     v.GetFloat64(CfgSlotClearanceY),
		},
		CutWidthMm: v.GetFloat64(CfgCutWidth),
		PxPerMm:    v.GetFloat64(CfgPxPerMm),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	cal := c.Calibration
	switch {
	case cal.MinClearanceMm < 0:
		return fmt.Errorf("%s must not be negative", CfgMinClearance)
	case cal.MinDiameterMm <= 0 || cal.MaxDiameterMm < cal.MinDiameterMm:
		return fmt.Errorf("invalid hole diameter range [%g, %g]", cal.MinDiameterMm, cal.MaxDiameterMm)
	case cal.LockMinDiameterMm <= 0 || cal.LockMaxDiameterMm < cal.LockMinDiameterMm:
		return fmt.Errorf("invalid lock hole diameter range [%g, %g]",
			cal.LockMinDiameterMm, cal.LockMaxDiameterMm)
	case cal.SlotWidthMm <= 0 || cal.SlotHeightMm <= 0:
		return fmt.Errorf("invalid slot size %gx%g", cal.SlotWidthMm, cal.SlotHeightMm)
	case c.CutWidthMm <= 0:
		return fmt.Errorf("%s must be positive", CfgCutWidth)
	case c.PxPerMm <= 0:
		return fmt.Errorf("%s must be positive", CfgPxPerMm)
	}
	return nil
}
