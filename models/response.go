package models

// Domain is implemented by entities that can travel inside a Response.
type Domain interface {
	ConvertToJSON() any
}

// Response is the uniform envelope every service operation returns. It is
// never mutated after construction.
type Response struct {
	success     bool
	information string
	object      Domain
}

func NewResponse(success bool) Response {
	return Response{success: success}
}

func NewResponseWithInformation(success bool, information string) Response {
	return Response{success: success, information: information}
}

func NewResponseWithObject(success bool, information string, object Domain) Response {
	return Response{success: success, information: information, object: object}
}

func (r Response) Success() bool {
	return r.success
}

func (r Response) Information() string {
	return r.information
}

func (r Response) Object() Domain {
	return r.object
}

// JSONWithSuccess projects only the success flag.
func (r Response) JSONWithSuccess() map[string]any {
	return map[string]any{"success": r.success}
}

// JSONWithInformation projects the success flag and the message.
func (r Response) JSONWithInformation() map[string]any {
	projection := r.JSONWithSuccess()
	projection["information"] = r.information
	return projection
}

// JSONWithObject projects everything; the object entry is present only when a
// payload was attached.
func (r Response) JSONWithObject() map[string]any {
	projection := r.JSONWithInformation()
	if r.object != nil {
		projection["object"] = r.object.ConvertToJSON()
	}
	return projection
}
