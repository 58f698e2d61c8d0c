package config

// Base application details
const AppName = "quill"
const ConfigDirName = "quill"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "quill.log"

// Editor defaults
const DefaultHistoryCapacity = 50
const DefaultFontSize = 16
const SystemClipboard = false
