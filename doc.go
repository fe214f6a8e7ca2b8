// Package rtsp parses the address-like values of the Real Time Streaming
// Protocol (RTSP), rfc2326: resource URLs with their transport hints, and
// Range header time ranges in npt and smpte formats.
package rtsp
