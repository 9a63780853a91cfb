package model

import "testing"

func TestAudioURL_PrefersMP3(t *testing.T) {
	item := Pronunciation{
		PathMP3: "https://audio.example/a.mp3",
		PathOgg: "https://audio.example/a.ogg",
	}
	if got := item.AudioURL(); got != "https://audio.example/a.mp3" {
		t.Fatalf("AudioURL=%s want mp3 path", got)
	}
}

func TestAudioURL_FallsBackToOgg(t *testing.T) {
	item := Pronunciation{PathOgg: "https://audio.example/a.ogg"}
	if got := item.AudioURL(); got != "https://audio.example/a.ogg" {
		t.Fatalf("AudioURL=%s want ogg path", got)
	}
}

func TestAudioURL_EmptyWhenNoPaths(t *testing.T) {
	if got := (Pronunciation{}).AudioURL(); got != "" {
		t.Fatalf("AudioURL=%s want empty", got)
	}
}

func TestInferAudioFormat(t *testing.T) {
	cases := []struct {
		url, want string
	}{
		{"https://audio.example/a.mp3", "mp3"},
		{"https://audio.example/a.ogg", "ogg"},
		{"https://audio.example/a", "mp3"},
	}
	for _, tc := range cases {
		if got := InferAudioFormat(tc.url); got != tc.want {
			t.Fatalf("InferAudioFormat(%q)=%s want=%s", tc.url, got, tc.want)
		}
	}
}
