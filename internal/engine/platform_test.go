package engine

// fakePlatform is a scripted desktop used by the engine tests. It records
// every accent submission, theme reset, and peek toggle so tests can assert
// exactly what the shell would have seen.

type accentCall struct {
	taskbar Window
	kind    AccentKind
	abgr    uint32
}

type fakeWindowState struct {
	meta    WindowMetadata
	monitor MonitorID
	dead    bool
}

type fakePlatform struct {
	primary    TaskbarRef
	hasPrimary bool
	secondary  []TaskbarRef

	windows []Window // z-order
	state   map[Window]*fakeWindowState

	startWindow  Window
	startVisible bool

	fluent bool

	cb     Callbacks
	pumps  int
	onPump func(pump int)

	enumCalls   int
	accents     []accentCall
	themeResets []Window
	peekCalls   []bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{state: make(map[Window]*fakeWindowState)}
}

func (f *fakePlatform) setPrimaryTaskbar(w Window, m MonitorID) {
	f.primary = TaskbarRef{Window: w, Monitor: m}
	f.hasPrimary = true
	f.state[w] = &fakeWindowState{monitor: m}
}

func (f *fakePlatform) addSecondaryTaskbar(w Window, m MonitorID) {
	f.secondary = append(f.secondary, TaskbarRef{Window: w, Monitor: m})
	f.state[w] = &fakeWindowState{monitor: m}
}

func (f *fakePlatform) addWindow(w Window, m MonitorID, meta WindowMetadata) {
	f.windows = append(f.windows, w)
	f.state[w] = &fakeWindowState{meta: meta, monitor: m}
}

func (f *fakePlatform) showStart(w Window, m MonitorID) {
	f.startWindow = w
	f.startVisible = true
	f.state[w] = &fakeWindowState{monitor: m}
}

func (f *fakePlatform) FindPrimaryTaskbar() (TaskbarRef, bool) {
	return f.primary, f.hasPrimary
}

func (f *fakePlatform) SecondaryTaskbars() []TaskbarRef {
	return append([]TaskbarRef(nil), f.secondary...)
}

func (f *fakePlatform) MonitorOf(w Window) MonitorID {
	if st, ok := f.state[w]; ok {
		return st.monitor
	}
	return 0
}

func (f *fakePlatform) WindowMetadata(w Window) (WindowMetadata, bool) {
	st, ok := f.state[w]
	if !ok || st.dead {
		return WindowMetadata{}, false
	}
	return st.meta, true
}

func (f *fakePlatform) EnumTopLevelWindows(visit func(w Window) bool) {
	f.enumCalls++
	for _, w := range f.windows {
		if !visit(w) {
			return
		}
	}
}

func (f *fakePlatform) StartMenuWindow() (Window, bool) {
	if !f.startVisible {
		return 0, false
	}
	return f.startWindow, true
}

func (f *fakePlatform) SendThemeReset(taskbar Window) {
	f.themeResets = append(f.themeResets, taskbar)
}

func (f *fakePlatform) ApplyAccent(taskbar Window, kind AccentKind, argb uint32) {
	f.accents = append(f.accents, accentCall{
		taskbar: taskbar,
		kind:    kind,
		abgr:    EncodeAccentColor(kind, argb),
	})
}

func (f *fakePlatform) SetPeekButtonVisible(visible bool) {
	f.peekCalls = append(f.peekCalls, visible)
}

func (f *fakePlatform) FluentAvailable() bool {
	return f.fluent
}

func (f *fakePlatform) Subscribe(cb Callbacks) {
	f.cb = cb
}

func (f *fakePlatform) PumpMessage() bool {
	f.pumps++
	if f.onPump != nil {
		f.onPump(f.pumps)
	}
	return false
}

// lastAccentFor returns the most recent accent submitted for the taskbar.
func (f *fakePlatform) lastAccentFor(taskbar Window) (accentCall, bool) {
	for i := len(f.accents) - 1; i >= 0; i-- {
		if f.accents[i].taskbar == taskbar {
			return f.accents[i], true
		}
	}
	return accentCall{}, false
}

func (f *fakePlatform) themeResetsFor(taskbar Window) int {
	n := 0
	for _, w := range f.themeResets {
		if w == taskbar {
			n++
		}
	}
	return n
}
