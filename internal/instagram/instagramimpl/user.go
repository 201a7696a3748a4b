package instagramimpl

import (
	"fmt"
	"os"
	"time"

	"github.com/Davincible/goinsta/v3"
)

// Login connects to Instagram, first trying to load an exported session,
// then falling back to credentials when configured.
func (ig *IgImpl) Login() error {
	if err := ig.reloadSession(); err == nil {
		ig.Logger.Info("Using saved Instagram session", "path", ig.Config.Instagram.SessionPath)
		return nil
	}

	if ig.Config.Instagram.User == "" {
		ig.Logger.Warn("No session or credentials configured, proceeding without login")
		return nil
	}

	ig.Logger.Info("Attempting to log in with credentials")

	var loginErr error
	for attempt := 1; attempt <= 3; attempt++ {
		loginErr = ig.Client.Login()
		if loginErr == nil {
			break
		}

		ig.Logger.Error("Login attempt failed",
			"attempt", attempt,
			"error", loginErr)

		if attempt < 3 {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	if loginErr != nil {
		return fmt.Errorf("failed to log in after multiple attempts: %w", loginErr)
	}

	ig.Logger.Info("Successfully logged in with credentials")

	if err := ig.saveSession(); err != nil {
		ig.Logger.Warn("Failed to save Instagram session", "error", err)
	}

	return nil
}

// reloadSession swaps the client for one imported from the session file.
func (ig *IgImpl) reloadSession() error {
	if _, err := os.Stat(ig.Config.Instagram.SessionPath); os.IsNotExist(err) {
		return fmt.Errorf("session file not found: %w", err)
	}

	imported, err := goinsta.Import(ig.Config.Instagram.SessionPath)
	if err != nil {
		return fmt.Errorf("failed to import session: %w", err)
	}

	ig.Client = imported
	return nil
}

// saveSession exports the current session so the next invocation can skip
// the credential login.
func (ig *IgImpl) saveSession() error {
	if ig.Client == nil {
		return fmt.Errorf("no active Instagram session to save")
	}

	if err := ig.Client.Export(ig.Config.Instagram.SessionPath); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	ig.Logger.Info("Instagram session saved", "path", ig.Config.Instagram.SessionPath)
	return nil
}
