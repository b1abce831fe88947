package navigation

import "context"

// Delegate is told when a push or pop finished showing a screen.
type Delegate interface {
	DidShow(ctx context.Context, screen Screen)
}

// Stack is a push/pop stack of screens. It is not safe for concurrent use.
type Stack struct {
	screens  []Screen
	delegate Delegate
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) SetDelegate(d Delegate) { s.delegate = d }

func (s *Stack) Len() int { return len(s.screens) }

// Top returns the visible screen, or nil for an empty stack.
func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Screens returns the stack bottom first.
func (s *Stack) Screens() []Screen {
	return append([]Screen(nil), s.screens...)
}

// Find returns the screen with id if it is on the stack.
func (s *Stack) Find(id string) (Screen, bool) {
	for _, screen := range s.screens {
		if screen.ID() == id {
			return screen, true
		}
	}
	return nil, false
}

// SetRoot replaces the whole stack with root.
func (s *Stack) SetRoot(ctx context.Context, root Screen) {
	s.Clear(ctx)
	s.Push(ctx, root)
}

// Clear removes every screen, top first.
func (s *Stack) Clear(ctx context.Context) {
	for i := len(s.screens) - 1; i >= 0; i-- {
		disappear(ctx, s.screens[i])
	}
	s.screens = nil
}

// Push shows screen on top of the current one.
func (s *Stack) Push(ctx context.Context, screen Screen) {
	if top := s.Top(); top != nil {
		disappear(ctx, top)
	}
	s.screens = append(s.screens, screen)
	appear(ctx, screen)
	s.didShow(ctx, screen)
}

// Pop removes the top screen and reports false when only the root is left.
// The screen underneath is told it will appear while the popped one is still
// on the stack.
func (s *Stack) Pop(ctx context.Context) (Screen, bool) {
	if len(s.screens) < 2 {
		return nil, false
	}
	popped := s.screens[len(s.screens)-1]
	next := s.screens[len(s.screens)-2]

	disappear(ctx, popped)
	appear(ctx, next)
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	s.didShow(ctx, next)
	return popped, true
}

func (s *Stack) didShow(ctx context.Context, screen Screen) {
	if s.delegate != nil {
		s.delegate.DidShow(ctx, screen)
	}
}

func appear(ctx context.Context, screen Screen) {
	if a, ok := screen.(Appearer); ok {
		a.WillAppear(ctx)
	}
}

func disappear(ctx context.Context, screen Screen) {
	if d, ok := screen.(Disappearer); ok {
		d.WillDisappear(ctx)
	}
}
