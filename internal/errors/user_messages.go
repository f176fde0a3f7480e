package errors

// User-friendly error messages
const (
	MsgNotFound           = "%s not found."
	MsgAlreadyFavorited   = "Property already in favorites."
	MsgAlreadyRecommended = "You have already recommended this property to this user."
	MsgEmailTaken         = "An account with this email already exists."
	MsgPropertyIDTaken    = "A property with this id already exists."
	MsgNotOwner           = "You can only modify your own properties."
	MsgNotRecipient       = "Only the recipient can mark a recommendation as viewed."
	MsgNotSender          = "Only the sender can delete a recommendation."
	MsgSelfRecommendation = "You cannot recommend a property to yourself."
	MsgInvalidCredentials = "Invalid email or password."
	MsgAuthRequired       = "Authentication required."
	MsgRateLimited        = "You're searching too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
