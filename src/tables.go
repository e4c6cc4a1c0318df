package rds

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Presentation lookup tables (PTY/coverage/language/country
 *		names) and the string accessors built on them (spec.md
 *		§6, §7 "lookup tables ... specified here only by shape").
 *
 * Description:	The built-in tables below cover the common cases; a
 *		station list covering every ECC/language assignment in
 *		full is a data-entry exercise external to the decoder, so
 *		LoadTables lets an operator supply or extend the table
 *		from a YAML file at startup instead of compiling it in.
 *
 *------------------------------------------------------------------*/

var rdsPTYNames = [32]string{
	"None", "News", "Affairs", "Info", "Sport", "Educate", "Drama", "Culture",
	"Science", "Varied", "Pop M", "Rock M", "Easy M", "Light M", "Classics", "Other M",
	"Weather", "Finance", "Children", "Social", "Religion", "Phone In", "Travel", "Leisure",
	"Jazz", "Country", "Nation M", "Oldies", "Folk M", "Document", "TEST", "Alarm",
}

var rbdsPTYNames = [32]string{
	"None", "News", "Information", "Sports", "Talk", "Rock", "Classic Rock", "Adult Hits",
	"Soft Rock", "Top 40", "Country", "Oldies", "Soft", "Nostalgia", "Jazz", "Classical",
	"Rhythm and Blues", "Soft Rhythm and Blues", "Language", "Religious Music", "Religious Talk", "Personality", "Public", "College",
	"Spanish Talk", "Spanish Music", "Hip Hop", "Unassigned", "Unassigned", "Weather", "Emergency Test", "Emergency",
}

var coverageAreaNames = [16]string{
	"Local", "International", "National", "Supra-regional",
	"Regional 1", "Regional 2", "Regional 3", "Regional 4",
	"Regional 5", "Regional 6", "Regional 7", "Regional 8",
	"Regional 9", "Regional 10", "Regional 11", "Regional 12",
}

// languageNames is the EBU language-code table (spec.md §6, "128
// entries, with holes"). Unpopulated indices are resolved to "Unknown"
// by GetLanguageStr, not left as an empty string.
var languageNames = [128]string{
	1: "Albanian", 2: "Breton", 3: "Catalan", 4: "Croatian", 5: "Welsh",
	6: "Czech", 7: "Danish", 8: "German", 9: "English", 10: "Spanish",
	11: "Esperanto", 12: "Estonian", 13: "Basque", 14: "Faroese", 15: "French",
	16: "Frisian", 17: "Irish", 18: "Gaelic", 19: "Galician", 20: "Icelandic",
	21: "Italian", 22: "Lappish", 23: "Latin", 24: "Latvian", 25: "Luxembourgian",
	26: "Lithuanian", 27: "Hungarian", 28: "Maltese", 29: "Dutch", 30: "Norwegian",
	31: "Occitan", 32: "Polish", 33: "Portuguese", 34: "Romanian", 35: "Romansh",
	36: "Serbian", 37: "Slovak", 38: "Slovene", 39: "Finnish", 40: "Swedish",
	41: "Turkish", 42: "Flemish", 43: "Walloon",
	65: "Arabic", 66: "Bulgarian", 69: "Greek", 77: "Hebrew", 94: "Persian",
	99: "Russian", 120: "Chinese", 126: "Japanese", 127: "Korean",
}

// countryTables maps an ECC to a 16-entry table indexed by the top
// nibble of PI (spec.md §6, "per-ECC 5×16 tables at minimum for
// European ECC 0xE0..0xE4"). Index 0 is reserved in IEC 62106 and left
// empty.
var countryTables = map[uint8][16]string{
	0xE0: {"", "DE", "DZ", "AD", "IL", "IT", "BE", "RU", "PS", "AL", "AT", "HU", "MT", "DE", "EG", ""},
	0xE1: {"", "GR", "CY", "SM", "CH", "JO", "FI", "LU", "BG", "DK", "GI", "IQ", "GB", "LY", "RO", "FR"},
	0xE2: {"", "MA", "CZ", "PL", "VA", "SK", "SY", "TN", "NL", "LV", "LB", "AZ", "HR", "KZ", "SE", "BY"},
	0xE3: {"", "MD", "EE", "KG", "ES", "NO", "MK", "UZ", "BA", "BH", "CN", "TM", "UA", "KR", "PT", "SI"},
	0xE4: {"", "IS", "OM", "LT", "RS", "", "", "TR", "", "GE", "AM", "IE", "", "", "AE", ""},
}

// GetPTYStr returns the localized PTY name for pty, choosing the RBDS
// table when the decoder was created with isRBDS, or "" if pty is out
// of range (spec.md §6).
func (d *Decoder) GetPTYStr(pty uint8) string {
	table := &rdsPTYNames
	if d.IsRBDS {
		table = &rbdsPTYNames
	}
	if int(pty) >= len(table) {
		return ""
	}
	return table[pty]
}

// GetCountryStr derives a two-letter country code from the decoder's
// ECC and the top nibble of PI (spec.md §6).
func (d *Decoder) GetCountryStr() string {
	row, ok := countryTables[d.ECC]
	if !ok {
		return ""
	}
	nibble := (d.PI >> 12) & 0x0F
	return row[nibble]
}

// GetLanguageStr returns the language name for the decoder's LC, or
// "Unknown" for an unassigned slot (spec.md §6, §9 "holes in the
// language table map to Unknown").
func (d *Decoder) GetLanguageStr() string {
	if int(d.LC) >= len(languageNames) {
		return "Unknown"
	}
	name := languageNames[d.LC]
	if name == "" {
		return "Unknown"
	}
	return name
}

// GetCoverageStr returns the coverage-area name from bits 8..11 of PI
// (spec.md §6).
func (d *Decoder) GetCoverageStr() string {
	return coverageAreaNames[(d.PI>>8)&0x0F]
}

// TableOverrides is the shape LoadTables expects a YAML document to
// match: numeric language-index and ECC-keyed country overrides.
type TableOverrides struct {
	Language map[int]string            `yaml:"language"`
	Country  map[string]map[int]string `yaml:"country"`
}

// LoadTables reads a YAML document of table overrides from r and merges
// it into the package's built-in language and country tables. Country
// table keys are ECC values written as "0xNN" hex strings.
func LoadTables(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("rds: reading table data: %w", err)
	}

	var overrides TableOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("rds: parsing table file: %w", err)
	}

	for idx, name := range overrides.Language {
		if idx >= 0 && idx < len(languageNames) {
			languageNames[idx] = name
		}
	}

	for eccKey, rows := range overrides.Country {
		ecc, err := parseECCKey(eccKey)
		if err != nil {
			return err
		}
		table := countryTables[ecc]
		for nibble, code := range rows {
			if nibble >= 0 && nibble < 16 {
				table[nibble] = code
			}
		}
		countryTables[ecc] = table
	}

	return nil
}

func parseECCKey(s string) (uint8, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("rds: invalid ECC key %q: %w", s, err)
	}
	return uint8(v), nil
}
