package cli

const usageText = `
Pitchmate Client

Usage:
  pitchmate [OPTIONS] COMMAND

Options:
  --version        Show version information
  --server URL     Server URL (default: http://localhost:3000)
  --db PATH        Path to local database (default: pitchmate.db)

Environment (.env is loaded automatically):
  PITCHMATE_SERVER_URL             Server URL
  PITCHMATE_TOKEN_LIFETIME         Access token lifetime: 10m, 1h, 1d (default: 10m)
  PITCHMATE_DB                     Path to local database
  PITCHMATE_GOOGLE_CLIENT_ID       OAuth client id for Google sign-in
  PITCHMATE_GOOGLE_CLIENT_SECRET   OAuth client secret for Google sign-in

Commands:
  register                     Register new account (signs you in)
  login                        Login with email and password
  login --google               Login via Google sign-in
  login --credential TOKEN     Login with a ready Google ID token
  logout                       Logout and drop the local session
  status                       Show authentication status
  whoami                       Show your profile (fetched from server)
  feed                         List upcoming matches
  feed --mine                  List only your matches
  feed --offline               Render the last cached feed without network
  feed --clear-cache           Drop the cached feed snapshot
  match create                 Post a new match announcement
  match show <id>              Show match details and participants
  match update <id>            Update your match announcement
  match delete <id>            Delete your match announcement
  match join <id>              Join a match
  match leave <id>             Leave a match
  match teams <id>             Split participants into two teams
  like <id>                    Like a match post
  comments <id>                List comments for a match
  comment <id> <text>          Add a comment to a match
  profile update               Update username, skill level or photo

Examples:
  pitchmate register
  pitchmate login
  pitchmate feed
  pitchmate match create
  pitchmate match join 64f1c0a52ab79c0012345678
  pitchmate match teams 64f1c0a52ab79c0012345678
  pitchmate comment 64f1c0a52ab79c0012345678 "I'll bring the ball"
  pitchmate --server https://pitchmate.example.com login
`

const feedTemplate = `
=== Matches ===

{{- if eq (len .) 0 }}
No matches found.

Use 'pitchmate match create' to post the first one.

{{ else }}
Found {{len .}} match(es):

{{- range . }}
- {{ .Title }}
   ID:           {{ .ID }}
   Where:        {{ .Location }}
   When:         {{ .Date }}
   Players:      {{ len .ParticipantsIDs }}
   Likes:        {{ .LikesNumber }}
   Comments:     {{ .CommentsNumber }}

{{- end }}
Use 'pitchmate match show <id>' to view details and join.
{{- end }}
`

const teamsTemplate = `
=== Teams ===

Team A:
{{- range .TeamA }}
  - {{ . }}
{{- end }}

Team B:
{{- range .TeamB }}
  - {{ . }}
{{- end }}
`

const commentsTemplate = `
=== Comments ===

{{- if eq (len .) 0 }}
No comments yet.
{{ else }}
{{- range . }}
- {{ .Owner }}{{ if .Time }} ({{ .Time }}){{ end }}:
  {{ .Comment }}

{{- end }}
{{- end }}
`
