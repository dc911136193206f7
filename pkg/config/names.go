package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpeakerNames is the on-disk form of the identity choices for a
// non-interactive run:
//
//	main: SPEAKER_00
//	names:
//	  SPEAKER_00: Alice
//	  SPEAKER_01: Bob
type SpeakerNames struct {
	Main  string            `yaml:"main"`
	Names map[string]string `yaml:"names"`
}

// LoadSpeakerNames reads a speaker-name file
func LoadSpeakerNames(path string) (*SpeakerNames, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open speaker names: %w", err)
	}
	defer f.Close()

	var out SpeakerNames
	if err := yaml.NewDecoder(f).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode speaker names %s: %w", path, err)
	}
	if out.Names == nil {
		out.Names = map[string]string{}
	}
	return &out, nil
}
