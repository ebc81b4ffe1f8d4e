package launcher

import (
	"bytes"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

// attempt records one call into a fake spawner.
type attempt struct {
	command string
	args    []string
}

// scriptedSpawner replays a fixed sequence of outcomes, one per spawn call,
// and records every attempt.
type scriptedSpawner struct {
	attempts []attempt
	outcomes []Outcome
}

func (s *scriptedSpawner) spawn(command string, args []string, env []string) Outcome {
	s.attempts = append(s.attempts, attempt{command: command, args: args})
	if len(s.attempts) > len(s.outcomes) {
		return Outcome{Err: errors.New("unexpected spawn attempt")}
	}
	return s.outcomes[len(s.attempts)-1]
}

func notFoundOutcome(name string) Outcome {
	return Outcome{Err: &exec.Error{Name: name, Err: exec.ErrNotFound}}
}

func chainOpts(s *scriptedSpawner, env []string, stderr *bytes.Buffer) Options {
	if env == nil {
		env = []string{"PATH=/usr/bin"}
	}
	return Options{Env: env, Spawn: s.spawn, Stderr: stderr}
}

func TestBuildLaunchers_OrderInvariant(t *testing.T) {
	testCases := []struct {
		name string
		dist string
		args []string
	}{
		{"no args", "rhx-cli", nil},
		{"help flag", "rhx-cli", []string{"--help"}},
		{"override package", "my-fork", []string{"quote", "AAPL", "--json"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			launchers := BuildLaunchers(tc.dist, tc.args)

			if len(launchers) != 4 {
				t.Fatalf("BuildLaunchers() returned %d descriptors, want 4", len(launchers))
			}

			wantCommands := []string{"uvx", "pipx", "python3", "python"}
			for i, want := range wantCommands {
				if launchers[i].Command != want {
					t.Errorf("launcher[%d].Command = %q, want %q", i, launchers[i].Command, want)
				}
			}

			wantArgs := [][]string{
				append([]string{"--from", tc.dist, "rhx"}, tc.args...),
				append([]string{"run", "--spec", tc.dist, "rhx"}, tc.args...),
				append([]string{"-m", "pipx", "run", "--spec", tc.dist, "rhx"}, tc.args...),
				append([]string{"-m", "pipx", "run", "--spec", tc.dist, "rhx"}, tc.args...),
			}
			for i, want := range wantArgs {
				if !reflect.DeepEqual(launchers[i].Args, want) {
					t.Errorf("launcher[%d].Args = %v, want %v", i, launchers[i].Args, want)
				}
			}
		})
	}
}

func TestBuildLaunchers_FreshDescriptors(t *testing.T) {
	first := BuildLaunchers("rhx-cli", []string{"--help"})
	first[0].Args[0] = "mutated"

	second := BuildLaunchers("rhx-cli", []string{"--help"})
	if second[0].Args[0] != "--from" {
		t.Errorf("descriptor list shared state across builds: got %q", second[0].Args[0])
	}
}

func TestRunWithLaunchers_FirstSucceeds(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{{Exited: true, Status: 0}}}
	var stderr bytes.Buffer

	code := RunWithLaunchers([]string{"--help"}, chainOpts(s, nil, &stderr))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(s.attempts) != 1 {
		t.Errorf("spawn attempts = %d, want 1", len(s.attempts))
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestRunWithLaunchers_SkipsMissingThenSucceeds(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{
		notFoundOutcome("uvx"),
		{Exited: true, Status: 0},
	}}
	var stderr bytes.Buffer

	code := RunWithLaunchers(nil, chainOpts(s, nil, &stderr))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(s.attempts) != 2 {
		t.Fatalf("spawn attempts = %d, want 2", len(s.attempts))
	}
	if s.attempts[0].command != "uvx" || s.attempts[1].command != "pipx" {
		t.Errorf("attempt order = %v, want uvx then pipx", s.attempts)
	}
	if stderr.Len() != 0 {
		t.Errorf("missing runtime should be skipped silently, stderr = %q", stderr.String())
	}
}

func TestRunWithLaunchers_StopsAtFirstSuccess(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{
		{Exited: true, Status: 2},
		{Exited: true, Status: 0},
		{Exited: true, Status: 0}, // must never be reached
	}}
	var stderr bytes.Buffer

	code := RunWithLaunchers(nil, chainOpts(s, nil, &stderr))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(s.attempts) != 2 {
		t.Errorf("spawn attempts = %d, want 2 (stop at first success)", len(s.attempts))
	}
}

func TestRunWithLaunchers_RemembersLastNonzeroStatus(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{
		{Exited: true, Status: 2},
		notFoundOutcome("pipx"),
		{Exited: true, Status: 7},
		notFoundOutcome("python"),
	}}
	var stderr bytes.Buffer

	code := RunWithLaunchers(nil, chainOpts(s, nil, &stderr))

	if code != 7 {
		t.Errorf("exit code = %d, want 7 (last nonzero status)", code)
	}
	if len(s.attempts) != 4 {
		t.Errorf("spawn attempts = %d, want 4 (all tried)", len(s.attempts))
	}
	if !strings.Contains(stderr.String(), "all Python tool launchers failed") {
		t.Errorf("stderr = %q, want combined failure message", stderr.String())
	}
}

func TestRunWithLaunchers_LaunchErrorKeepsTrying(t *testing.T) {
	launchErr := errors.New("fork: resource temporarily unavailable")
	s := &scriptedSpawner{outcomes: []Outcome{
		{Err: launchErr},
		{Exited: true, Status: 0},
	}}
	var stderr bytes.Buffer

	code := RunWithLaunchers(nil, chainOpts(s, nil, &stderr))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(s.attempts) != 2 {
		t.Errorf("spawn attempts = %d, want 2", len(s.attempts))
	}
	if !strings.Contains(stderr.String(), launchErr.Error()) {
		t.Errorf("stderr = %q, want launch error surfaced", stderr.String())
	}
}

func TestRunWithLaunchers_LaunchErrorThenAllMissing(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{
		{Err: errors.New("permission denied")},
		notFoundOutcome("pipx"),
		notFoundOutcome("python3"),
		notFoundOutcome("python"),
	}}
	var stderr bytes.Buffer

	code := RunWithLaunchers(nil, chainOpts(s, nil, &stderr))

	// A runnable-but-broken launcher was seen, so this is a real failure,
	// not the "no runtime found" case.
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if strings.Contains(stderr.String(), "Unable to find a Python tool launcher") {
		t.Errorf("stderr = %q, should not report missing runtimes", stderr.String())
	}
}

func TestRunWithLaunchers_SignalStopsChain(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{
		{Signal: "SIGKILL"},
		{Exited: true, Status: 0}, // would succeed, must not be tried
	}}
	var stderr bytes.Buffer

	code := RunWithLaunchers(nil, chainOpts(s, nil, &stderr))

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if len(s.attempts) != 1 {
		t.Errorf("spawn attempts = %d, want 1 (signal is fatal for the chain)", len(s.attempts))
	}
	if !strings.Contains(stderr.String(), "SIGKILL") {
		t.Errorf("stderr = %q, want signal report", stderr.String())
	}
}

func TestRunWithLaunchers_NoRuntimeFound(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{
		notFoundOutcome("uvx"),
		notFoundOutcome("pipx"),
		notFoundOutcome("python3"),
		notFoundOutcome("python"),
	}}
	var stderr bytes.Buffer

	code := RunWithLaunchers([]string{"--help"}, chainOpts(s, nil, &stderr))

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Unable to find a Python tool launcher") {
		t.Errorf("stderr = %q, want launcher guidance", stderr.String())
	}
	if !strings.Contains(stderr.String(), "rhx --help") {
		t.Errorf("stderr = %q, want exact retry invocation", stderr.String())
	}
}

func TestRunWithLaunchers_PackageOverride(t *testing.T) {
	s := &scriptedSpawner{outcomes: []Outcome{{Exited: true, Status: 0}}}
	var stderr bytes.Buffer
	env := []string{"PATH=/usr/bin", EnvPackageOverride + "=rhx-cli-nightly"}

	code := RunWithLaunchers([]string{"quote", "AAPL"}, chainOpts(s, env, &stderr))

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	want := []string{"--from", "rhx-cli-nightly", "rhx", "quote", "AAPL"}
	if !reflect.DeepEqual(s.attempts[0].args, want) {
		t.Errorf("argv = %v, want %v", s.attempts[0].args, want)
	}
}
