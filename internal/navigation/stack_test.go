package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScreen struct {
	BaseScreen
	events *[]string
}

func newRecordingScreen(title string, events *[]string) *recordingScreen {
	return &recordingScreen{BaseScreen: NewBaseScreen(title), events: events}
}

func (r *recordingScreen) View() any { return r.Title() }

func (r *recordingScreen) WillAppear(context.Context) {
	*r.events = append(*r.events, r.Title()+".willAppear")
}

func (r *recordingScreen) WillDisappear(context.Context) {
	*r.events = append(*r.events, r.Title()+".willDisappear")
}

type delegateFunc func(ctx context.Context, s Screen)

func (f delegateFunc) DidShow(ctx context.Context, s Screen) { f(ctx, s) }

func TestStack_PushPopOrder(t *testing.T) {
	ctx := context.Background()
	var events []string
	root := newRecordingScreen("root", &events)
	child := newRecordingScreen("child", &events)

	s := NewStack()
	s.SetDelegate(delegateFunc(func(_ context.Context, screen Screen) {
		events = append(events, screen.Title()+".didShow")
		// The popped screen is gone by the time the delegate runs.
		if screen == Screen(root) {
			_, still := s.Find(child.ID())
			assert.False(t, still)
		}
	}))

	s.SetRoot(ctx, root)
	s.Push(ctx, child)
	assert.Equal(t, 2, s.Len())
	assert.Same(t, child, s.Top())

	popped, ok := s.Pop(ctx)
	require.True(t, ok)
	assert.Same(t, child, popped)

	assert.Equal(t, []string{
		"root.willAppear", "root.didShow",
		"root.willDisappear", "child.willAppear", "child.didShow",
		"child.willDisappear", "root.willAppear", "root.didShow",
	}, events)

	_, ok = s.Pop(ctx)
	assert.False(t, ok, "root stays")
	assert.Equal(t, 1, s.Len())
}

func TestStack_AppearSeesPoppedScreen(t *testing.T) {
	ctx := context.Background()
	var events []string
	s := NewStack()
	root := newRecordingScreen("root", &events)
	child := newRecordingScreen("child", &events)
	s.SetRoot(ctx, root)
	s.Push(ctx, child)

	var sawChild bool
	s.SetDelegate(nil)
	checked := &appearCheck{recordingScreen: root, check: func() { _, sawChild = s.Find(child.ID()) }}
	s.screens[0] = checked

	s.Pop(ctx)
	assert.True(t, sawChild)
}

type appearCheck struct {
	*recordingScreen
	check func()
}

func (p *appearCheck) WillAppear(ctx context.Context) {
	p.check()
	p.recordingScreen.WillAppear(ctx)
}

func TestStack_EmptyAndFind(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Top())
	_, ok := s.Pop(context.Background())
	assert.False(t, ok)

	var events []string
	screen := newRecordingScreen("a", &events)
	s.Push(context.Background(), screen)
	found, ok := s.Find(screen.ID())
	require.True(t, ok)
	assert.Same(t, screen, found)
	_, ok = s.Find("nope")
	assert.False(t, ok)
	assert.Len(t, s.Screens(), 1)
}

func TestBaseScreen_NavigationItem(t *testing.T) {
	b := NewBaseScreen("Notes")
	assert.NotEmpty(t, b.ID())
	assert.Equal(t, NavigationItem{}, *b.NavigationItem())

	b.ShowBackButton()
	b.EnableSwipeToBack()
	b.SetTitle("Coffee")
	assert.Equal(t, NavigationItem{BackButton: true, SwipeToBack: true}, *b.NavigationItem())
	assert.Equal(t, "Coffee", b.Title())
}

func TestStack_Clear(t *testing.T) {
	ctx := context.Background()
	var events []string
	s := NewStack()
	s.SetRoot(ctx, newRecordingScreen("root", &events))
	s.Push(ctx, newRecordingScreen("child", &events))
	events = nil

	s.Clear(ctx)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{"child.willDisappear", "root.willDisappear"}, events)
}
