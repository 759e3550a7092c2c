package service

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListVideosRecursiveNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"intro.mp4",
		"Module 2/video10.mp4",
		"Module 2/video2.MP4",
		"Module 10/video1.mkv",
		"notes.txt",
		"Module 2/readme.md",
	} {
		touch(t, dir, f)
	}

	got := NewMediaService([]string{"mp4", "mkv"}).ListVideos(dir)
	want := []string{
		"Module 2/video2.MP4",
		"Module 2/video10.mp4",
		"Module 10/video1.mkv",
		"intro.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListVideos = %v, want %v", got, want)
	}
}

func TestListVideosMissingFolder(t *testing.T) {
	svc := NewMediaService([]string{"mp4"})

	got := svc.ListVideos(filepath.Join(t.TempDir(), "missing"))
	if got == nil || len(got) != 0 {
		t.Errorf("missing folder: got %v, want empty non-nil slice", got)
	}

	got = svc.ListVideos("")
	if got == nil || len(got) != 0 {
		t.Errorf("empty folder arg: got %v, want empty non-nil slice", got)
	}
}

func TestListVideosEmptyFolder(t *testing.T) {
	got := NewMediaService([]string{"mp4"}).ListVideos(t.TempDir())
	if got == nil || len(got) != 0 {
		t.Errorf("empty folder: got %v, want empty non-nil slice", got)
	}
}

func TestListVideosExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp4")
	touch(t, dir, "b.avi")
	touch(t, dir, "c.srt")

	got := NewMediaService([]string{".mp4", "AVI"}).ListVideos(dir)
	want := []string{"a.mp4", "b.avi"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListVideos = %v, want %v", got, want)
	}
}

func TestListEntriesWatchedFlag(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "v1.mp4")
	touch(t, dir, "v2.mp4")
	touch(t, dir, "v3.mp4")

	entries := NewMediaService([]string{"mp4"}).ListEntries(dir, 2, false)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for i, e := range entries {
		wantWatched := i < 2
		if e.Watched != wantWatched {
			t.Errorf("entry[%d].watched = %v, want %v", i, e.Watched, wantWatched)
		}
		if e.Duration != nil {
			t.Errorf("entry[%d] has duration without probe", i)
		}
	}
}
