package rest

const (
	// api
	RouteAPI = "/api"

	// users
	RouteUsers                 = RouteAPI + "/users"
	RouteUsersSignup           = RouteUsers + "/signup"
	RouteUsersAll              = RouteUsers + "/all"
	RouteUsersByEmail          = RouteUsers + "/by-email"
	RouteUsersOwnProfile       = RouteUsers + "/me/profile"
	RouteUsersOwnNotification  = RouteUsers + "/me/notification"
	RouteUser                  = RouteUsers + "/:user_id"
	RouteUserPublic            = RouteUser + "/public"
	RouteUserProfile           = RouteUser + "/profile"
	RouteUserNotification      = RouteUser + "/notification"
	RouteUserStatus            = RouteUser + "/status"

	// participants
	RouteParticipants                = RouteAPI + "/participants"
	RouteParticipantsSignup          = RouteParticipants + "/signup"
	RouteParticipantsAll             = RouteParticipants + "/all"
	RouteParticipantsByEmail         = RouteParticipants + "/by-email"
	RouteParticipantsOwnProfile      = RouteParticipants + "/me/profile"
	RouteParticipantsOwnNotification = RouteParticipants + "/me/notification"
	RouteParticipant                 = RouteParticipants + "/:participant_id"
	RouteParticipantPublic           = RouteParticipant + "/public"
	RouteParticipantProfile          = RouteParticipant + "/profile"
	RouteParticipantNotification     = RouteParticipant + "/notification"
	RouteParticipantStatus           = RouteParticipant + "/status"

	// ops
	RouteHealth  = RouteAPI + "/healthz"
	RouteMetrics = RouteAPI + "/metrics"
)
