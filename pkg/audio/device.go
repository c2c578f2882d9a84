package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Presets for common Linux capture tools. Each writes raw s16le PCM to stdout.
var (
	PresetArecord = []string{"arecord", "-q", "-t", "raw", "-f", "S16_LE", "-c", "{channels}", "-r", "{rate}"}
	PresetFFmpeg  = []string{"ffmpeg", "-loglevel", "error", "-f", "pulse", "-i", "default",
		"-ac", "{channels}", "-ar", "{rate}", "-f", "s16le", "-"}
)

// ExecDevice captures audio by running an external command.
type ExecDevice struct {
	Command []string
}

// NewExecDevice returns a device running command, or arecord when command is empty.
func NewExecDevice(command []string) *ExecDevice {
	if len(command) == 0 {
		command = PresetArecord
	}
	return &ExecDevice{Command: command}
}

// Preset returns the named capture command, or nil for an unknown name.
func Preset(name string) []string {
	switch strings.ToLower(name) {
	case "arecord":
		return PresetArecord
	case "ffmpeg":
		return PresetFFmpeg
	}
	return nil
}

func (d *ExecDevice) Open(ctx context.Context, c Constraints) (Stream, error) {
	if len(d.Command) == 0 {
		return nil, ErrNoDevice
	}
	args := expand(d.Command, c)

	path, err := exec.LookPath(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDevice, args[0])
	}

	cmd := exec.Command(path, args[1:]...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, ErrPermissionDenied
		}
		return nil, fmt.Errorf("start capture: %w", err)
	}

	return &execStream{cmd: cmd, stdout: stdout, stderr: &stderr}, nil
}

func expand(command []string, c Constraints) []string {
	r := strings.NewReplacer("{channels}", strconv.Itoa(c.ChannelCount), "{rate}", strconv.Itoa(c.SampleRate))
	out := make([]string, len(command))
	for i, a := range command {
		out[i] = r.Replace(a)
	}
	return out
}

type execStream struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr *strings.Builder

	waitOnce sync.Once
	once     sync.Once
}

func (s *execStream) Read(p []byte) (int, error) {
	n, err := s.stdout.Read(p)
	if errors.Is(err, io.EOF) {
		// stderr is complete only once Wait has returned.
		s.wait()
		if msg := strings.ToLower(s.stderr.String()); strings.Contains(msg, "permission denied") {
			return n, ErrPermissionDenied
		}
	}
	return n, err
}

// Stop asks the capture process to finish. It keeps writing whatever it
// still buffers and then closes stdout, so reads run to EOF.
func (s *execStream) Stop() error {
	if s.cmd.Process == nil {
		return nil
	}
	if err := s.cmd.Process.Signal(os.Interrupt); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

// Close kills the capture process and releases the device.
func (s *execStream) Close() error {
	s.once.Do(func() {
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		_ = s.stdout.Close()
		s.wait()
	})
	return nil
}

func (s *execStream) wait() {
	s.waitOnce.Do(func() {
		_ = s.cmd.Wait()
	})
}

func isClosedErr(err error) bool {
	return errors.Is(err, os.ErrClosed)
}
