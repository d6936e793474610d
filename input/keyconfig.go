package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// Section names in the keys config block
const (
	SectionNormal     = "normal"      // rune bindings
	SectionNormalKeys = "normal_keys" // named keys outside the text field
	SectionTextKeys   = "text_keys"   // named keys inside the text field
)

// specialKeyNames is tcell's key naming, lowercased, for config lookup
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig turns key config sections into a sparse override KeyTable.
// Only sections present are populated. Unknown sections, keys or actions fail.
func LoadKeyConfig(sections map[string]map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	for section, bindings := range sections {
		switch section {
		case SectionNormal:
			runes, err := parseRuneSection(section, bindings)
			if err != nil {
				return nil, err
			}
			kt.NormalRunes = runes
		case SectionNormalKeys:
			keys, err := parseSpecialKeySection(section, bindings)
			if err != nil {
				return nil, err
			}
			kt.SpecialKeys = keys
		case SectionTextKeys:
			keys, err := parseSpecialKeySection(section, bindings)
			if err != nil {
				return nil, err
			}
			kt.TextKeys = keys
		default:
			return nil, fmt.Errorf("unknown key section %q", section)
		}
	}
	return kt, nil
}

func parseRuneSection(section string, data map[string]string) (map[rune]IntentType, error) {
	result := make(map[rune]IntentType, len(data))
	for key, action := range data {
		r, err := resolveRune(key)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", section, err)
		}
		it, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("section %s, key %q: %w", section, key, err)
		}
		result[r] = it
	}
	return result, nil
}

func parseSpecialKeySection(section string, data map[string]string) (map[tcell.Key]IntentType, error) {
	result := make(map[tcell.Key]IntentType, len(data))
	for key, action := range data {
		k, ok := specialKeyNames[strings.ToLower(key)]
		if !ok {
			return nil, fmt.Errorf("section %s: unknown key name %q", section, key)
		}
		it, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("section %s, key %q: %w", section, key, err)
		}
		result[k] = it
	}
	return result, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	it, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return it, nil
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(kt.SpecialKeys)),
		NormalRunes: make(map[rune]IntentType, len(kt.NormalRunes)),
		TextKeys:    make(map[tcell.Key]IntentType, len(kt.TextKeys)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.NormalRunes {
		c.NormalRunes[k] = v
	}
	for k, v := range kt.TextKeys {
		c.TextKeys[k] = v
	}
	return c
}

// MergeKeyTable returns base overridden by the non-nil maps of override.
// An override bound to IntentNone removes the key.
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.NormalRunes, override.NormalRunes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.TextKeys, override.TextKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
