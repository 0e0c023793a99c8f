package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/voicememo"
	"github.com/ik5/voicememo/device"
	"github.com/ik5/voicememo/formats/wav"
	"github.com/ik5/voicememo/recording"
	"github.com/ik5/voicememo/session"
	"github.com/ik5/voicememo/store"
)

var errAmbiguousID = errors.New("ambiguous recording id")

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"record":   {"[-max duration] [-quiet]  record from the microphone", cmdRecord},
	"play":     {"[-full] <id>  play a recording", cmdPlay},
	"trim":     {"<id> <start> <end>  set trim ratios in [0,1]", cmdTrim},
	"finalize": {"<id>  apply the trim permanently", cmdFinalize},
	"waveform": {"[-n points] [-full] <id>  draw the waveform", cmdWaveform},
	"import":   {"<file>  import a wav, mp3, ogg or aiff file", cmdImport},
	"export":   {"[-pcm16] [-full] <id> <file.wav>  write a WAV file", cmdExport},
	"list":     {"list recordings", cmdList},
	"delete":   {"<id>  delete a recording", cmdDelete},
}

// resolveID accepts a full recording ID or a unique prefix of one.
func resolveID(st *store.Store, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	all, err := st.List()
	if err != nil {
		return uuid.Nil, err
	}

	var match []uuid.UUID
	for _, s := range all {
		if arg != "" && strings.HasPrefix(s.ID.String(), strings.ToLower(arg)) {
			match = append(match, s.ID)
		}
	}

	switch len(match) {
	case 0:
		return uuid.Nil, fmt.Errorf("%w: %s", store.ErrNotFound, arg)
	case 1:
		return match[0], nil
	}

	return uuid.Nil, fmt.Errorf("%w: %s matches %d recordings", errAmbiguousID, arg, len(match))
}

func parseArgs(name string, args []string, nargs int, define func(fs *flag.FlagSet)) ([]string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if define != nil {
		define(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != nargs {
		return nil, fmt.Errorf("%s: want %d arguments, got %d", name, nargs, fs.NArg())
	}

	return fs.Args(), nil
}

func (a *app) load(arg string) (*recording.Recording, error) {
	id, err := resolveID(a.store, arg)
	if err != nil {
		return nil, err
	}

	return a.store.Get(id)
}

func cmdRecord(ctx context.Context, a *app, args []string) error {
	var maxDur time.Duration
	var quiet bool
	if _, err := parseArgs("record", args, 0, func(fs *flag.FlagSet) {
		fs.DurationVar(&maxDur, "max", 0, "stop after this long")
		fs.BoolVar(&quiet, "quiet", false, "do not draw the level meter")
	}); err != nil {
		return err
	}

	mic, err := device.NewMicCapture(a.cfg.TempDir)
	if err != nil {
		return err
	}
	defer mic.Close()

	opts := a.sessionOptions()
	if !quiet {
		opts = append(opts, session.WithLevelListener(levelPrinter(os.Stderr)))
	}
	rec := session.NewRecorder(mic, opts...)
	defer rec.Close()

	if maxDur > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, maxDur)
		defer cancel()
	}

	if err := rec.Start(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Recording, press Ctrl-C to stop.")
	<-ctx.Done()
	fmt.Fprintln(os.Stderr)

	buf, err := rec.Stop()
	if err != nil {
		return err
	}

	r := recording.FromBuffer(buf)
	if err := a.store.Put(r); err != nil {
		return err
	}
	a.log.Infof("Saved recording %s (%.1fs)", r.ID, r.Duration())
	fmt.Println(r.ID)

	return nil
}

func cmdPlay(ctx context.Context, a *app, args []string) error {
	var full bool
	rest, err := parseArgs("play", args, 1, func(fs *flag.FlagSet) {
		fs.BoolVar(&full, "full", false, "ignore the trim range")
	})
	if err != nil {
		return err
	}

	r, err := a.load(rest[0])
	if err != nil {
		return err
	}
	buf, err := r.Buffer(full)
	if err != nil {
		return err
	}

	spk, err := device.NewSpeakerPlayback()
	if err != nil {
		return err
	}
	defer spk.Close()

	done := make(chan struct{}, 1)
	opts := append(a.sessionOptions(),
		session.WithPositionListener(progressPrinter(os.Stderr, buf.Duration())),
		session.WithCompletionListener(func() {
			select {
			case done <- struct{}{}:
			default:
			}
		}),
	)
	player := session.NewPlayer(spk, opts...)
	defer player.Close()

	if err := player.Play(buf); err != nil {
		return err
	}
	defer fmt.Fprintln(os.Stderr)

	poll := time.NewTicker(100 * time.Millisecond)
	defer poll.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return player.Stop()
		case <-poll.C:
			if !player.IsPlaying() {
				return nil
			}
		}
	}
}

func cmdTrim(_ context.Context, a *app, args []string) error {
	rest, err := parseArgs("trim", args, 3, nil)
	if err != nil {
		return err
	}

	start, err := strconv.ParseFloat(rest[1], 64)
	if err != nil {
		return fmt.Errorf("trim start: %w", err)
	}
	end, err := strconv.ParseFloat(rest[2], 64)
	if err != nil {
		return fmt.Errorf("trim end: %w", err)
	}

	r, err := a.load(rest[0])
	if err != nil {
		return err
	}
	if err := r.SetTrim(start, end); err != nil {
		return err
	}
	if err := a.store.Put(r); err != nil {
		return err
	}
	fmt.Printf("%s %.1fs\n", r.ID, r.Duration())

	return nil
}

func cmdFinalize(_ context.Context, a *app, args []string) error {
	rest, err := parseArgs("finalize", args, 1, nil)
	if err != nil {
		return err
	}

	r, err := a.load(rest[0])
	if err != nil {
		return err
	}
	if err := r.Finalize(); err != nil {
		return err
	}
	if err := a.store.Put(r); err != nil {
		return err
	}
	fmt.Printf("%s %.1fs\n", r.ID, r.Duration())

	return nil
}

func cmdWaveform(_ context.Context, a *app, args []string) error {
	n := a.cfg.Resolution
	var full bool
	rest, err := parseArgs("waveform", args, 1, func(fs *flag.FlagSet) {
		fs.IntVar(&n, "n", n, "number of points")
		fs.BoolVar(&full, "full", false, "ignore the trim range")
	})
	if err != nil {
		return err
	}

	r, err := a.load(rest[0])
	if err != nil {
		return err
	}
	buf, err := r.Buffer(full)
	if err != nil {
		return err
	}
	points, err := buf.Waveform(n)
	if err != nil {
		return err
	}
	fmt.Println(renderWaveform(points))

	return nil
}

func cmdImport(_ context.Context, a *app, args []string) error {
	rest, err := parseArgs("import", args, 1, nil)
	if err != nil {
		return err
	}

	buf, err := voicememo.Import(voicememo.DefaultRegistry(), rest[0])
	if err != nil {
		return err
	}

	r := recording.FromBuffer(buf)
	if err := a.store.Put(r); err != nil {
		return err
	}
	a.log.Infof("Imported %s as %s (%.1fs)", rest[0], r.ID, r.Duration())
	fmt.Println(r.ID)

	return nil
}

func cmdExport(_ context.Context, a *app, args []string) error {
	var pcm16, full bool
	rest, err := parseArgs("export", args, 2, func(fs *flag.FlagSet) {
		fs.BoolVar(&pcm16, "pcm16", false, "write 16 bit integer samples")
		fs.BoolVar(&full, "full", false, "ignore the trim range")
	})
	if err != nil {
		return err
	}

	r, err := a.load(rest[0])
	if err != nil {
		return err
	}
	buf, err := r.Buffer(full)
	if err != nil {
		return err
	}

	f, err := os.Create(rest[1])
	if err != nil {
		return err
	}
	write := wav.WriteFloat32
	if pcm16 {
		write = wav.WritePCM16
	}
	if err := write(f, buf); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func cmdList(_ context.Context, a *app, args []string) error {
	if _, err := parseArgs("list", args, 0, nil); err != nil {
		return err
	}

	all, err := a.store.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tDURATION\tFINALIZED")
	for _, s := range all {
		fmt.Fprintf(tw, "%s\t%s\t%.1fs\t%v\n", s.ID, s.Created.Format(time.DateTime), s.Duration, s.Finalized)
	}

	return tw.Flush()
}

func cmdDelete(_ context.Context, a *app, args []string) error {
	rest, err := parseArgs("delete", args, 1, nil)
	if err != nil {
		return err
	}

	id, err := resolveID(a.store, rest[0])
	if err != nil {
		return err
	}

	return a.store.Delete(id)
}
