package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decred/slog"
	"github.com/google/uuid"

	"github.com/ik5/voicememo/formats/wav"
	"github.com/ik5/voicememo/pcm"
	"github.com/ik5/voicememo/recording"
	"github.com/ik5/voicememo/store"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	st, err := store.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	return &app{cfg: defaultConfig(), log: slog.Disabled, store: st}
}

func putRecording(t *testing.T, a *app, id string, samples int) *recording.Recording {
	t.Helper()

	r := recording.FromBuffer(pcm.New(make([]float32, samples)))
	r.ID = uuid.MustParse(id)
	if err := a.store.Put(r); err != nil {
		t.Fatal(err)
	}

	return r
}

func TestResolveID(t *testing.T) {
	a := newTestApp(t)
	putRecording(t, a, "aaaa1111-0000-0000-0000-000000000000", 10)
	putRecording(t, a, "aaaa2222-0000-0000-0000-000000000000", 10)
	putRecording(t, a, "bbbb0000-0000-0000-0000-000000000000", 10)

	tests := []struct {
		arg     string
		want    string
		wantErr error
	}{
		{"aaaa1", "aaaa1111-0000-0000-0000-000000000000", nil},
		{"BBBB", "bbbb0000-0000-0000-0000-000000000000", nil},
		{"aaaa", "", errAmbiguousID},
		{"cccc", "", store.ErrNotFound},
		{"", "", store.ErrNotFound},
		{"aaaa2222-0000-0000-0000-000000000000", "aaaa2222-0000-0000-0000-000000000000", nil},
	}

	for _, tt := range tests {
		id, err := resolveID(a.store, tt.arg)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("resolveID(%q) error = %v, want %v", tt.arg, err, tt.wantErr)
			}
			continue
		}
		if err != nil || id.String() != tt.want {
			t.Errorf("resolveID(%q) = %s, %v", tt.arg, id, err)
		}
	}
}

func TestTrimFinalizeDelete(t *testing.T) {
	a := newTestApp(t)
	r := putRecording(t, a, "0f000000-0000-0000-0000-000000000000", 44100)
	ctx := context.Background()

	if err := cmdTrim(ctx, a, []string{"0f", "0.25", "0.75"}); err != nil {
		t.Fatalf("trim: %v", err)
	}
	if err := cmdTrim(ctx, a, []string{"0f", "0.8", "0.2"}); !errors.Is(err, pcm.ErrInvalidTrim) {
		t.Errorf("inverted trim error = %v", err)
	}

	if err := cmdFinalize(ctx, a, []string{"0f"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	got, err := a.store.Get(r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsFinalized() || got.HasTrim() {
		t.Errorf("finalized = %v, trimmed = %v", got.IsFinalized(), got.HasTrim())
	}
	buf, err := got.Buffer(true)
	if err != nil {
		t.Fatal(err)
	}
	if buf.FrameLength() != 22050 {
		t.Errorf("finalized frames = %d, want 22050", buf.FrameLength())
	}

	if err := cmdFinalize(ctx, a, []string{"0f"}); !errors.Is(err, recording.ErrAlreadyFinalized) {
		t.Errorf("second finalize error = %v", err)
	}

	if err := cmdDelete(ctx, a, []string{"0f"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := a.store.Get(r.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get after delete error = %v", err)
	}
}

func TestImportExport(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	ctx := context.Background()

	src := filepath.Join(dir, "in.wav")
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.WriteFloat32(f, pcm.New([]float32{0.5, -0.5, 0.25})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := cmdImport(ctx, a, []string{src}); err != nil {
		t.Fatalf("import: %v", err)
	}
	all, err := a.store.List()
	if err != nil || len(all) != 1 {
		t.Fatalf("List() = %v, %v", all, err)
	}

	out := filepath.Join(dir, "out.wav")
	if err := cmdExport(ctx, a, []string{all[0].ID.String(), out}); err != nil {
		t.Fatalf("export: %v", err)
	}

	in, _ := os.ReadFile(src)
	exported, _ := os.ReadFile(out)
	if string(in) != string(exported) {
		t.Error("float export differs from the imported file")
	}

	if err := cmdExport(ctx, a, []string{"-pcm16", all[0].ID.String(), out}); err != nil {
		t.Fatalf("export -pcm16: %v", err)
	}
	if info, _ := os.Stat(out); info.Size() != 44+3*2 {
		t.Errorf("pcm16 size = %d", info.Size())
	}

	if err := cmdList(ctx, a, nil); err != nil {
		t.Errorf("list: %v", err)
	}
	if err := cmdWaveform(ctx, a, []string{"-n", "2", all[0].ID.String()}); err != nil {
		t.Errorf("waveform: %v", err)
	}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	if _, err := parseArgs("trim", []string{"a"}, 3, nil); err == nil {
		t.Error("parseArgs() accepted too few arguments")
	}
	if _, err := parseArgs("list", []string{"-bogus"}, 0, nil); err == nil {
		t.Error("parseArgs() accepted an unknown flag")
	}
}
