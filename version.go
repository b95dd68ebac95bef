package questionnaire

// Version is the current release of the module.
const Version = "0.3.0"
