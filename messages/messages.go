// Package messages holds the canonical response strings. The mobile clients
// match on these literals, so changing one is a breaking change.
package messages

const (
	AllFieldsError = "All fields are mandatory"
	InternalError  = "Internal server error"

	// Auth
	UserError                  = "User does not exist"
	UserPasswordError          = "Wrong password"
	UserRegisterEmailValidator = "Mail already exist"
	UserRegisterNameValidator  = "Name already exists"
	UserChangePasswordSuccess  = "Password changed successfully"
	UserChangeMailSuccess      = "Mail changed successfully"
	MailSearchError            = "Mail does not exist"

	// Profile
	ProfileError             = "Profile does not exist"
	ProfileEditedSuccess     = "Profile edited successfully"
	ProfileDeleteSuccess     = "User account deleted successfully"
	ProfileFiltersAddSuccess = "Filters added successfully"

	// Child
	ChildError         = "Child does not exist"
	ChildDeleteSuccess = "Child deleted successfully"
	ChildAddedSuccess  = "Child added successfully"

	// Memory
	MemoryError         = "Memory does not exist"
	MemoryAddedSuccess  = "Memory added successfully"
	MemoryEditedSuccess = "Memory edited successfully"
	MemoryDeleteSuccess = "Memory deleted successfully"

	// Reminder
	ReminderError         = "Reminder does not exist"
	ReminderAddedSuccess  = "Reminder added successfully"
	ReminderEditSuccess   = "Reminder edited successfully"
	ReminderDeleteSuccess = "Reminder deleted successfully"
	ReminderStateSuccess  = "Reminder state changed successfully"

	// Games
	GameError = "Game does not exist"

	// Mailer
	CodeError   = "Code does not exist"
	CodeSuccess = "Code confirmed successfully"

	// FCM / Alerts
	FcmUpdatedSuccess  = "Fcm token updated successfully"
	FcmTestSuccess     = "Testing Notification Successfully"
	AlertSendSuccess   = "Alert sent successfully"
	MessageSendSuccess = "Message sent successfully"
)
