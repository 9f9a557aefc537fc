package vaultfs

import (
	"io/fs"
	"syscall"
	"time"
)

// createdTime approximates the file's creation time. Linux does not
// expose birth time through os.FileInfo, so ctime is used; it matches
// creation for files the backend writes once and never touches again.
func createdTime(info fs.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return info.ModTime()
}
