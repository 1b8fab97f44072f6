package gitea

type versionResponse struct {
	Version string `json:"version"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
}

type repoResponse struct {
	FullName string `json:"full_name"`
	SSHURL   string `json:"ssh_url"`
	CloneURL string `json:"clone_url"`
}

type repoSearchResponse struct {
	OK   bool           `json:"ok"`
	Data []repoResponse `json:"data"`
}

type labelResponse struct {
	Name string `json:"name"`
}

type issueResponse struct {
	Number int64           `json:"number"`
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	State  string          `json:"state"`
	User   userResponse    `json:"user"`
	Labels []labelResponse `json:"labels"`
}

type commentResponse struct {
	Body string       `json:"body"`
	User userResponse `json:"user"`
}
