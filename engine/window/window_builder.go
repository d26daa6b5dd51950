package window

// WindowBuilderOption is a functional option for configuring window Settings.
// Use the With* functions to create options.
type WindowBuilderOption func(s *Settings)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(s *Settings) {
		s.Title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(s *Settings) {
		s.Width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(s *Settings) {
		s.Height = height
	}
}

// WithMinSize sets the smallest size the user can resize the window to.
func WithMinSize(width, height int) WindowBuilderOption {
	return func(s *Settings) {
		s.MinWidth = width
		s.MinHeight = height
	}
}

// WithMaxSize sets the largest size the user can resize the window to. Zero leaves a dimension unbounded.
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(s *Settings) {
		s.MaxWidth = width
		s.MaxHeight = height
	}
}
