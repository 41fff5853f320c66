package version

// Version is the version of this build of the record lists CLI.
const Version = "0.9.0"
