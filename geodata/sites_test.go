package geodata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSites(t *testing.T) {
	path := writeFile(t, "plz.tsv",
		"# plz\tlon\tlat\tname\n"+
			"10115\t13.3889\t52.5323\tBerlin\n"+
			"\n"+
			"80331\t11.5755\t48.1372\tMünchen\n")

	sites, err := LoadSites(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sites) != 2 {
		t.Fatalf("got %d sites, want 2", len(sites))
	}
	if sites[0].Code != "10115" || sites[0].Name != "Berlin" {
		t.Errorf("first site = %+v", sites[0])
	}
	if sites[0].Pos.X != 13.3889 || sites[0].Pos.Y != 52.5323 {
		t.Errorf("first site position = %v", sites[0].Pos)
	}
	if sites[1].Name != "München" {
		t.Errorf("second site name = %q", sites[1].Name)
	}
}

func TestLoadSites_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "too few fields",
			content: "10115\t13.39\n",
			wantIn:  "row 1",
		},
		{
			name:    "bad longitude",
			content: "10115\teast\t52.5\tBerlin\n",
			wantIn:  "longitude",
		},
		{
			name:    "bad latitude",
			content: "10115\t13.39\tnorth\tBerlin\n",
			wantIn:  "latitude",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.tsv", tt.content)
			_, err := LoadSites(path)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

func TestLoadSites_MissingFile(t *testing.T) {
	if _, err := LoadSites(filepath.Join(t.TempDir(), "nope.tsv")); err == nil {
		t.Error("want error for missing file")
	}
}
