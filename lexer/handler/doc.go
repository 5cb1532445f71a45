// Provide handler types for the tokens produced by the lexer
//
// A consumer of the token stream (a renderer, a log colorizer) only needs to
// implement the handlers it cares about. Each family of commands lives in
// its own interface and the dispatcher uses type assertion to detect which
// ones are implemented; tokens without a matching handler are skipped.
//
// The handlers receive commands as recognized, nothing is interpreted on
// the way: amounts and positions are passed through untouched.
//
// E.g:
//
// - handler.CursorHandler with CursorUp method for ESC[<n>A
//
// - handler.SGRHandler with SetGraphicMode method for ESC[<n>;...m
package handler
