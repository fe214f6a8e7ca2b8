// Command rtspparse parses RTSP URLs, Range header values and the control
// and range attributes of session descriptions, printing the structured
// result as JSON or as a table.
package main
