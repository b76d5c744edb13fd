package domain

// Application holds the dependencies shared by every command handler.
type Application struct {
	Store  HistoryStore
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
