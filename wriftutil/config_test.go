/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package wriftutil

import "testing"

func TestInitializeConfigDefaults(t *testing.T) {
	cfg := InitializeConfig()

	if got := cfg.GetInt("mins"); got != 60 {
		t.Errorf("default mins = %d, want 60", got)
	}
	if got := cfg.GetFloat64("windspeed"); got != -1.0 {
		t.Errorf("default windspeed = %v, want -1.0", got)
	}
	if got := cfg.GetFloat64("winddir"); got != -1.0 {
		t.Errorf("default winddir = %v, want -1.0", got)
	}
	if got := cfg.GetString("loglevel"); got != "info" {
		t.Errorf("default loglevel = %q, want %q", got, "info")
	}
}

func TestInitializeConfigRegistersInputFiles(t *testing.T) {
	cfg := InitializeConfig()
	files := cfg.InputFiles()

	want := map[string]bool{"config": true, "landfire": true, "fueltable": true}
	if len(files) != len(want) {
		t.Fatalf("expected %d input files, got %d: %v", len(want), len(files), files)
	}
	for _, f := range files {
		if !want[f] {
			t.Errorf("unexpected input file option %q", f)
		}
	}
}

func TestRunCmdFlagOverridesDefault(t *testing.T) {
	cfg := InitializeConfig()
	if err := cfg.runCmd.Flags().Set("mins", "120"); err != nil {
		t.Fatalf("unexpected error setting flag: %v", err)
	}
	if got := cfg.GetInt("mins"); got != 120 {
		t.Errorf("mins after flag override = %d, want 120", got)
	}
}
