package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testSplitJSON = `[
  {
    "original dialog id": "dlg-1",
    "log": [{"user utterance": "Hi", "system response": "Hello"}],
    "original dialog info": "{\"summaries\":{\"abstractive_summaries\":[[\"Greeting.\"]]}}"
  },
  {
    "original dialog id": "dlg-2",
    "log": [{"user utterance": "Bye", "system response": "See you"}],
    "original dialog info": "{}"
  }
]`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadSplitFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "train.json", testSplitJSON)
	split, err := LoadSplitFile(path)
	if err != nil {
		t.Fatalf("LoadSplitFile: %v", err)
	}
	if len(split.Records) != 2 {
		t.Fatalf("len(records)=%d, want 2", len(split.Records))
	}
	if _, ok := split.Records[0][FieldLog]; !ok {
		t.Fatalf("record 0 missing log field")
	}
	if _, ok := split.Records[1]["original dialog id"]; !ok {
		t.Fatalf("record 1 missing original dialog id field")
	}
}

func TestLoadSplitFile_RejectsNonArray(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "bad.json", `{"records": []}`)
	if _, err := LoadSplitFile(path); err == nil {
		t.Fatalf("expected error for non-array split file")
	}
}

func TestLoadCorpus_SingleFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "data.json", testSplitJSON)
	corpus, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if corpus.IsNamed() {
		t.Fatalf("expected a single-split corpus")
	}
	if len(corpus.Single().Records) != 2 {
		t.Fatalf("len(records)=%d, want 2", len(corpus.Single().Records))
	}
}

func TestLoadCorpus_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "train.json", testSplitJSON)
	writeTestFile(t, dir, "validation.json", `[]`)
	writeTestFile(t, dir, "notes.txt", "ignored")

	corpus, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if !corpus.IsNamed() {
		t.Fatalf("expected a named corpus")
	}
	if got, want := corpus.SplitNames(), []string{"train", "validation"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("split names=%v, want %v", got, want)
	}
	if len(corpus.Split("train").Records) != 2 {
		t.Fatalf("train records=%d, want 2", len(corpus.Split("train").Records))
	}
	if len(corpus.Split("validation").Records) != 0 {
		t.Fatalf("validation records=%d, want 0", len(corpus.Split("validation").Records))
	}
}

func TestLoadCorpus_EmptyDirectory(t *testing.T) {
	t.Parallel()

	if _, err := LoadCorpus(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory without split files")
	}
}
