package assistant

// Version exposes the version of the application.
const Version = "0.1.0"
