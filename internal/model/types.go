package model

import "strings"

// Pronunciation is one rated recording returned by the keyed provider.
// Audio URLs are transient; the provider documents a ~2 hour expiry, so they
// are downloaded immediately and never cached.
type Pronunciation struct {
	ID       int64  `json:"id"`
	Word     string `json:"word"`
	Username string `json:"username"`
	Sex      string `json:"sex"`
	Country  string `json:"country"`
	PathMP3  string `json:"pathmp3"`
	PathOgg  string `json:"pathogg"`
	Rate     int    `json:"rate"`
	NumVotes int    `json:"num_votes"`
}

// AudioURL returns the preferred download URL (mp3 over ogg) or "" when the
// item carries no audio path at all.
func (p Pronunciation) AudioURL() string {
	if strings.TrimSpace(p.PathMP3) != "" {
		return p.PathMP3
	}
	return strings.TrimSpace(p.PathOgg)
}

// AudioResult is downloaded audio held only for the duration of one call.
type AudioResult struct {
	Bytes  []byte
	Format string
	URL    string
}

// InferAudioFormat guesses the container from the URL, not the bytes.
// Substring (not extension) match: provider URLs embed the format as a path
// segment, e.g. /mp3/ or /ogg/.
func InferAudioFormat(audioURL string) string {
	lower := strings.ToLower(audioURL)
	switch {
	case strings.Contains(lower, "mp3"):
		return "mp3"
	case strings.Contains(lower, "ogg"):
		return "ogg"
	default:
		return "mp3"
	}
}
