// Package smtp подключение к почтовому серверу для отправки напоминаний.
package smtp

import "io"

// Client часть *smtp.Client, которой пользуется отправитель писем.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}
