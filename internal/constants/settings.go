package constants

// Every flat key-value setting lives under a common namespace prefix so that
// purge can sweep the whole area without knowing each key.
const (
	SettingsPrefix = "healbit-"

	SettingLastMood           = "healbit-last-mood"
	SettingUserName           = "healbit-user-name"
	SettingOnboardingComplete = "healbit-onboarding-complete"

	// Session-scoped handoff values written by the recording flow and read
	// by the follow-up screens.
	SettingSessionMood     = "healbit-session-mood"
	SettingSessionEmotions = "healbit-session-emotions"
	SettingCurrentPrompt   = "healbit-current-prompt"
)
