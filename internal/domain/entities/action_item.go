package entities

import (
	"bytes"
	"encoding/json"
)

// ActionItem is one AI-produced coaching entry. Every field is optional.
type ActionItem struct {
	DisplayText         string `json:"display_text,omitempty"`
	Text                string `json:"text,omitempty"`
	Speaker             string `json:"speaker,omitempty"`
	Context             string `json:"context,omitempty"`
	AudioTriggerSpeaker string `json:"audio_trigger_speaker,omitempty"`
	AudioTriggerText    string `json:"audio_trigger_text,omitempty"`
	AudioResponseText   string `json:"audio_response_text,omitempty"`
}

type actionItemAlias ActionItem

// UnmarshalJSON accepts either an object or a bare string. The backend falls
// back to plain strings when its generator is offline; those decode as Text.
func (a *ActionItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ActionItem{Text: s}
		return nil
	}

	var alias actionItemAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*a = ActionItem(alias)
	return nil
}

// HeadlineText is the text to show for the item
func (a ActionItem) HeadlineText() string {
	if a.DisplayText != "" {
		return a.DisplayText
	}
	return a.Text
}

// ResponseText is the corrected line to synthesize for the main user
func (a ActionItem) ResponseText() string {
	if a.AudioResponseText != "" {
		return a.AudioResponseText
	}
	return a.Text
}
