package config

const VERSION = "v0.4.0"

const HEADER = `
   _    ___ ____ _____ __  __ _____ ____   ____ _____
  | |  |_ _/ ___|_   _|  \/  | ____|  _ \ / ___| ____|
  | |   | |\___ \ | | | |\/| |  _| | |_) | |  _|  _|
  | |___| | ___) || | | |  | | |___|  _ <| |_| | |___
  |_____|___|____/ |_| |_|  |_|_____|_| \_\\____|_____|
`

// DEFAULT_SUBS is the built-in substitution table, used when no -subs
// file is given. Each key is replaced by its value, in declaration
// order, on every raw input line before tokenization.
const DEFAULT_SUBS = `
# common dot obfuscations found in raw threat feeds:
"[.]": "."
"(.)": "."
"[dot]": "."
"(dot)": "."
"{.}": "."

# defanged scheme prefixes; dropping them leaves the bare domain:
"hxxp://": ""
"hxxps://": ""
`
