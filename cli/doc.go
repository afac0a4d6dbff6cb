// Package cli holds the terminal plumbing for commands: boxed banners,
// token sources (piped input or interactive prompts), input decoding and
// result rendering.
package cli
