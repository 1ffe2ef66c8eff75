// Package feedback selects and triggers the audio and haptic cues that
// accompany handled gestures.
//
// Cue selection is a total pure function over (Configuration, gesture,
// action): per-action and per-(action, gesture) overrides win, then the
// special space long-press rules, then the configured defaults per action
// class and per gesture kind. Triggering is fire-and-forget through a
// host-supplied Backend; backend failures and panics degrade silently and
// never reach the edit pipeline.
//
// The Configuration is supplied in memory at construction. LoadConfiguration
// additionally fills one from a host JSON file, so a config watcher can
// hot-swap cue sets at runtime.
package feedback
