package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	allow    bool

	calls   []string
	visited []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) visit(route string) bool {
	f.visited = append(f.visited, route)
	return f.allow
}
func (f *fakeExec) statusLine() string { return "/test" }

func (f *fakeExec) Login(context.Context) error    { f.loggedIn = true; return f.record("login") }
func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Logout(context.Context) error   { f.loggedIn = false; return f.record("logout") }
func (f *fakeExec) WhoAmI(context.Context) error   { return f.record("whoami") }
func (f *fakeExec) TwoFactor(_ context.Context, enable bool) error {
	return f.record(fmt.Sprintf("2fa:%v", enable))
}
func (f *fakeExec) RegisterFace(context.Context) error { return f.record("face") }

func (f *fakeExec) Feed(_ context.Context, page int) error {
	return f.record(fmt.Sprintf("feed:%d", page))
}
func (f *fakeExec) Explore(_ context.Context, page int) error {
	return f.record(fmt.Sprintf("explore:%d", page))
}
func (f *fakeExec) Stories(context.Context) error    { return f.record("stories") }
func (f *fakeExec) CreatePost(context.Context) error { return f.record("post") }
func (f *fakeExec) CreateStory(context.Context) error {
	return f.record("story")
}
func (f *fakeExec) Like(_ context.Context, id int64) error {
	return f.record(fmt.Sprintf("like:%d", id))
}
func (f *fakeExec) Unlike(_ context.Context, id int64) error {
	return f.record(fmt.Sprintf("unlike:%d", id))
}
func (f *fakeExec) Comments(_ context.Context, id int64) error {
	return f.record(fmt.Sprintf("comments:%d", id))
}
func (f *fakeExec) AddComment(_ context.Context, id int64) error {
	return f.record(fmt.Sprintf("comment:%d", id))
}
func (f *fakeExec) Trending(context.Context) error { return f.record("trending") }
func (f *fakeExec) Hashtag(_ context.Context, tag string) error {
	return f.record("hashtag:" + tag)
}

func (f *fakeExec) Profile(_ context.Context, id int64) error {
	return f.record(fmt.Sprintf("profile:%d", id))
}
func (f *fakeExec) EditProfile(context.Context) error        { return f.record("edit") }
func (f *fakeExec) Search(_ context.Context, q string) error { return f.record("search:" + q) }
func (f *fakeExec) Follow(_ context.Context, id int64) error {
	return f.record(fmt.Sprintf("follow:%d", id))
}
func (f *fakeExec) Unfollow(_ context.Context, id int64) error {
	return f.record(fmt.Sprintf("unfollow:%d", id))
}
func (f *fakeExec) Followers(context.Context) error   { return f.record("followers") }
func (f *fakeExec) Following(context.Context) error   { return f.record("following") }
func (f *fakeExec) Suggestions(context.Context) error { return f.record("suggestions") }
func (f *fakeExec) Preferences(context.Context) error { return f.record("prefs") }

func (f *fakeExec) Admin(_ context.Context, args []string) error {
	return f.record("admin:" + strings.Join(args, " "))
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchAndArgs(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"feed 2",
		"like 42",
		"like abc",
		"hashtag #roadtrip",
		"search mountain lovers",
		"2fa on",
		"2fa maybe",
		"admin rmpost 7",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{allow: true}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	want := []string{
		"login",
		"feed:1",
		"like:42",
		"hashtag:roadtrip",
		"search:mountain lovers",
		"2fa:true",
		"admin:rmpost 7",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
}

func TestRunREPL_GuardDeniesCommand(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("feed\nquit\n")
	exec := &fakeExec{allow: false}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("handler ran despite guard denial: %v", exec.calls)
	}
	if len(exec.visited) != 1 || exec.visited[0] != "/feed" {
		t.Fatalf("guard not consulted for /feed: %v", exec.visited)
	}
}

func TestRunREPL_HelpAndExitSkipGuards(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("help\nexit\n")
	exec := &fakeExec{allow: false}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	if len(exec.visited) != 0 {
		t.Fatalf("help/exit should not consult guards: %v", exec.visited)
	}
}
