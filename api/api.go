// Package api contains the types and interfaces that are used throughout the getpath code base
package api

// GetpathConfig is an option key that can be used to point out a build configuration file. When not
// specified, the compiled-in constants are used unless a configuration file is found in the GetpathRoot.
const GetpathConfig = `Getpath::Config`

// GetpathRoot is an option key that can be used to change the directory that is searched for a build
// configuration file. The default is the current working directory.
const GetpathRoot = `Getpath::Root`

// GetpathHome is an option key for an explicit home override. It takes precedence over the home
// environment variable.
const GetpathHome = `Getpath::Home`

// GetpathSearchPath is an option key for an explicit search path override. It takes precedence over the
// search path environment variable.
const GetpathSearchPath = `Getpath::SearchPath`

// GetpathProgramName is an option key for the invocation name of the program, i.e. its argv[0]
const GetpathProgramName = `Getpath::ProgramName`

// GetpathWarnings is an option key that controls whether diagnostics about missing prefixes are emitted
const GetpathWarnings = `Getpath::Warnings`

// GetpathEnvironment is an option key for an environment snapshot in the form of a []string with
// KEY=value entries. The process environment is used when this option is absent.
const GetpathEnvironment = `Getpath::Environment`
