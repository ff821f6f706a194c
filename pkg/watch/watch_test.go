package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/coolbeans/jalaw/pkg/parser"
)

const validLaw = `<Law Era="Reiwa" Year="1" Num="1" LawType="Act" Lang="ja">
<LawNum>令和元年法律第一号</LawNum>
<LawBody><LawTitle>監視法</LawTitle><MainProvision>
<Article Num="1"><ArticleTitle>第一条</ArticleTitle>
<Paragraph Num="1"><ParagraphNum/><ParagraphSentence><Sentence>本文</Sentence></ParagraphSentence></Paragraph>
</Article>
</MainProvision></LawBody></Law>`

const brokenLaw = `<Law Era="Reiwa" Year="1" Num="1" LawType="Act" Lang="ja"><LawNum>x</LawNum></Law>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestMatches(t *testing.T) {
	w := New(t.TempDir(), nil, Options{Patterns: []string{"*.xml", "law_*"}}, nil)

	tests := map[string]bool{
		"/a/b/constitution.xml": true,
		"law_draft.txt":         true,
		"notes.txt":             false,
		"xml":                   false,
	}
	for path, expected := range tests {
		if got := w.Matches(path); got != expected {
			t.Errorf("Matches(%q): expected %v, got %v", path, expected, got)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "a.xml", validLaw)
	bad := writeFile(t, dir, "b.xml", brokenLaw)
	writeFile(t, dir, "readme.txt", "not a law")
	if err := os.Mkdir(filepath.Join(dir, "sub.xml"), 0o755); err != nil {
		t.Fatal(err)
	}

	w := New(dir, parser.New(), Options{Workers: 3}, nil)
	var mu sync.Mutex
	var notified int
	w.SetOnChange(func(Event) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	events, err := w.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if notified != 2 {
		t.Errorf("expected 2 notifications, got %d", notified)
	}

	if events[0].Path != good || events[0].Err != nil || events[0].Law == nil {
		t.Errorf("expected parsed %s, got %+v", good, events[0])
	}
	if events[0].Op != OpScan {
		t.Errorf("expected scan op, got %s", events[0].Op)
	}
	if events[1].Path != bad || !errors.Is(events[1].Err, parser.ErrStructuralViolation) {
		t.Errorf("expected structural violation for %s, got %+v", bad, events[1])
	}

	if l, ok := w.Get(good); !ok || l.Title() != "監視法" {
		t.Errorf("expected stored tree for %s", good)
	}
	if _, ok := w.Get(bad); ok {
		t.Error("expected no tree for a failed parse")
	}
	if paths := w.Paths(); len(paths) != 1 || paths[0] != good {
		t.Errorf("expected [%s], got %v", good, paths)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "absent"), nil, Options{}, nil)
	if _, err := w.Scan(context.Background()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestScanCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", validLaw)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := New(dir, nil, Options{}, nil)
	if _, err := w.Scan(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, nil, Options{Debounce: 20 * time.Millisecond, Workers: 2}, nil)

	events := make(chan Event, 16)
	w.SetOnChange(func(ev Event) { events <- ev })
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.StopWatch()

	path := writeFile(t, dir, "new.xml", validLaw)
	writeFile(t, dir, "ignored.txt", "x")

	select {
	case ev := <-events:
		if ev.Path != path {
			t.Errorf("expected event for %s, got %s", path, ev.Path)
		}
		if ev.Op != OpCreate && ev.Op != OpModify {
			t.Errorf("expected create or modify, got %s", ev.Op)
		}
		if ev.Err != nil {
			t.Errorf("expected successful parse, got %v", ev.Err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for parse event")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Op == OpRemove {
				if _, ok := w.Get(path); ok {
					t.Error("expected tree to be dropped after removal")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for remove event")
		}
	}
}

func TestStopWatchIdempotent(t *testing.T) {
	w := New(t.TempDir(), nil, Options{}, nil)
	w.StopWatch()
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	w.StopWatch()
	w.StopWatch()
}
