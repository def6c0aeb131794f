package report

// CSVHeader is the fixed first row of the attendance export. It is emitted
// even when no records match.
const CSVHeader = "EmployeeId,Name,Email,Department,Date,CheckIn,CheckOut,Status,TotalHours"

const CSVFilename = "attendance-report.csv"
