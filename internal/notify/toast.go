package notify

import "fmt"

// Toast is a transient user-facing notification. Every success/failure
// outcome surfaces as one of these; none of them crash the page.
type Toast struct {
	Level   string `json:"level"` // "success" | "error"
	Message string `json:"message"`
}

func Success(msg string) Toast { return Toast{Level: "success", Message: msg} }
func Error(msg string) Toast   { return Toast{Level: "error", Message: msg} }

// The fixed toast texts shown across the screens.
const (
	MsgUserNotFound       = "User not found"
	MsgInvalidPIN         = "Invalid PIN"
	MsgLoginFailed        = "Login failed"
	MsgLoginOK            = "Login successful"
	MsgEmailTaken         = "Email already registered"
	MsgRegistrationFailed = "Registration failed. Please try again."
	MsgRegistrationOK     = "Registration successful!"
	MsgUserDataNotFound   = "User data not found"
	MsgLoadFailed         = "Failed to load user data"
	MsgTorchUnsupported   = "Torch is not supported on this device"
	MsgFlashlightFailed   = "Failed to activate flashlight"
	MsgSoundFailed        = "Failed to play alert sound"
	MsgUpdateOK           = "Profile updated successfully"
	MsgUpdateFailed       = "Failed to update profile"
)

// AlertTriggered is the unconditional confirmation toast, decoupled from the
// best-effort device attempts.
func AlertTriggered(tier string) Toast {
	return Success(fmt.Sprintf("%s alert triggered", tier))
}
