package lib

// Version is reported by the CLIs and in websocket hello frames.
const Version = "0.3.0"
