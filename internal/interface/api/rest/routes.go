package rest

const (
	// auth
	RouteRegister = "/register"
	RouteLogin    = "/login"
	RouteRefresh  = "/token/refresh"
	RouteLogout   = "/logout"
	RouteMe       = "/me"

	// files
	RouteFileUpload      = "/file/upload"
	RouteFile            = "/file/:file_id"
	RouteFilePublic      = "/file/public/:file_id"
	RouteFileShare       = "/file/:file_id/share"
	RouteFileShareByID   = "/file/:file_id/share/:permission_id"
	RouteFileShareByUser = "/file/:file_id/share/user/:user_id"

	// ops
	RouteApiV1   = "/api/v1"
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
